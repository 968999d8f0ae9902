package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/param211/corpmart/internal/identity"
	"github.com/param211/corpmart/internal/viewhistory/domain"
	"github.com/param211/corpmart/internal/viewhistory/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setup(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&domain.ViewHistory{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    conn,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, conn, node
}

func TestRecord_RepeatVisitsKeepOneRow(t *testing.T) {
	svc, conn, genID := setup(t)
	viewer := genID.Generate().Int64()
	business := genID.Generate().Int64()

	require.NoError(t, svc.Record(context.Background(), viewer, business))

	var first domain.ViewHistory
	require.NoError(t, conn.First(&first).Error)

	require.NoError(t, svc.Record(context.Background(), viewer, business))

	var count int64
	require.NoError(t, conn.Model(&domain.ViewHistory{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Original timestamp survives the repeat visit.
	var stored domain.ViewHistory
	require.NoError(t, conn.First(&stored).Error)
	assert.Equal(t, first.ViewedAt.Unix(), stored.ViewedAt.Unix())
	assert.Equal(t, first.ID, stored.ID)
}

func TestRecord_DistinctPairsEachGetARow(t *testing.T) {
	svc, conn, genID := setup(t)
	viewer := genID.Generate().Int64()
	other := genID.Generate().Int64()
	business := genID.Generate().Int64()
	second := genID.Generate().Int64()

	require.NoError(t, svc.Record(context.Background(), viewer, business))
	require.NoError(t, svc.Record(context.Background(), other, business))
	require.NoError(t, svc.Record(context.Background(), viewer, second))

	var count int64
	require.NoError(t, conn.Model(&domain.ViewHistory{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestList_ReturnsCallerHistoryOnly(t *testing.T) {
	svc, _, genID := setup(t)
	viewer := genID.Generate()
	other := genID.Generate()
	business := genID.Generate().Int64()

	require.NoError(t, svc.Record(context.Background(), viewer.Int64(), business))
	require.NoError(t, svc.Record(context.Background(), other.Int64(), genID.Generate().Int64()))

	ctx := identity.WithIdentity(context.Background(), identity.Identity{UserID: viewer})
	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, snowflake.ID(business).String(), items[0].BusinessID)
}
