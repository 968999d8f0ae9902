package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	businessdomain "github.com/param211/corpmart/internal/business/domain"
	businessrepository "github.com/param211/corpmart/internal/business/repository"
	"github.com/param211/corpmart/internal/contactrequest/domain"
	"github.com/param211/corpmart/internal/contactrequest/repository"
	"github.com/param211/corpmart/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	svc   domain.Service
	conn  *gorm.DB
	genID *snowflake.Node
}

func setup(t *testing.T) *fixture {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&businessdomain.Business{}, &domain.ContactRequest{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:         conn,
		Log:        zap.NewNop(),
		GenID:      node,
		Repo:       repository.Provide(),
		Businesses: businessrepository.Provide(),
	})
	return &fixture{svc: svc, conn: conn, genID: node}
}

func (f *fixture) seedBusiness(t *testing.T) snowflake.ID {
	t.Helper()
	id := f.genID.Generate()
	require.NoError(t, f.conn.Create(&businessdomain.Business{
		ID:           id.Int64(),
		PostedBy:     f.genID.Generate().Int64(),
		IsVerified:   true,
		BusinessName: "Sunrise Textiles",
		Country:      "India",
	}).Error)
	return id
}

func authedCtx(userID snowflake.ID) context.Context {
	return identity.WithIdentity(context.Background(), identity.Identity{UserID: userID})
}

func TestCreate_SecondRequestConflicts(t *testing.T) {
	f := setup(t)
	businessID := f.seedBusiness(t)
	buyer := f.genID.Generate()

	first, err := f.svc.Create(authedCtx(buyer), domain.CreateRequest{
		BusinessID: businessID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, businessID.String(), first.BusinessID)

	_, err = f.svc.Create(authedCtx(buyer), domain.CreateRequest{
		BusinessID: businessID.String(),
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyRequested)

	var count int64
	require.NoError(t, f.conn.Model(&domain.ContactRequest{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreate_DifferentBuyersDoNotConflict(t *testing.T) {
	f := setup(t)
	businessID := f.seedBusiness(t)

	_, err := f.svc.Create(authedCtx(f.genID.Generate()), domain.CreateRequest{
		BusinessID: businessID.String(),
	})
	require.NoError(t, err)

	_, err = f.svc.Create(authedCtx(f.genID.Generate()), domain.CreateRequest{
		BusinessID: businessID.String(),
	})
	require.NoError(t, err)
}

func TestCreate_UnknownBusiness(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Create(authedCtx(f.genID.Generate()), domain.CreateRequest{
		BusinessID: f.genID.Generate().String(),
	})
	assert.ErrorIs(t, err, businessdomain.ErrNotFound)
}

func TestCreate_RequiresAuthentication(t *testing.T) {
	f := setup(t)
	businessID := f.seedBusiness(t)

	_, err := f.svc.Create(context.Background(), domain.CreateRequest{
		BusinessID: businessID.String(),
	})
	assert.ErrorIs(t, err, businessdomain.ErrUnauthenticated)
}

func TestHasContacted(t *testing.T) {
	f := setup(t)
	businessID := f.seedBusiness(t)
	buyer := f.genID.Generate()

	contacted, err := f.svc.HasContacted(context.Background(), buyer.Int64(), businessID.Int64())
	require.NoError(t, err)
	assert.False(t, contacted)

	_, err = f.svc.Create(authedCtx(buyer), domain.CreateRequest{
		BusinessID: businessID.String(),
	})
	require.NoError(t, err)

	contacted, err = f.svc.HasContacted(context.Background(), buyer.Int64(), businessID.Int64())
	require.NoError(t, err)
	assert.True(t, contacted)
}
