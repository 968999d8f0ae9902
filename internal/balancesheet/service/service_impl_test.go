package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/param211/corpmart/internal/balancesheet/domain"
	"github.com/param211/corpmart/internal/balancesheet/repository"
	businessdomain "github.com/param211/corpmart/internal/business/domain"
	businessrepository "github.com/param211/corpmart/internal/business/repository"
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
	require.NoError(t, conn.AutoMigrate(&businessdomain.Business{}, &domain.Balancesheet{}))

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

func (f *fixture) seedBusiness(t *testing.T, owner snowflake.ID) snowflake.ID {
	t.Helper()
	id := f.genID.Generate()
	require.NoError(t, f.conn.Create(&businessdomain.Business{
		ID:           id.Int64(),
		PostedBy:     owner.Int64(),
		IsVerified:   true,
		BusinessName: "Sunrise Textiles",
		Country:      "India",
	}).Error)
	return id
}

func authedCtx(userID snowflake.ID) context.Context {
	return identity.WithIdentity(context.Background(), identity.Identity{UserID: userID})
}

func TestAttach_OwnerOnly(t *testing.T) {
	f := setup(t)
	owner := f.genID.Generate()
	stranger := f.genID.Generate()
	businessID := f.seedBusiness(t, owner)

	_, err := f.svc.Attach(authedCtx(stranger), domain.AttachRequest{
		BusinessID: businessID.String(),
		FileName:   "fy24.pdf",
	})
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	resp, err := f.svc.Attach(authedCtx(owner), domain.AttachRequest{
		BusinessID: businessID.String(),
		FileName:   "fy24.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "fy24.pdf", resp.FileName)
	assert.Equal(t, businessID.String(), resp.BusinessID)
}

func TestAttach_SecondSheetConflicts(t *testing.T) {
	f := setup(t)
	owner := f.genID.Generate()
	businessID := f.seedBusiness(t, owner)

	_, err := f.svc.Attach(authedCtx(owner), domain.AttachRequest{
		BusinessID: businessID.String(),
		FileName:   "fy24.pdf",
	})
	require.NoError(t, err)

	_, err = f.svc.Attach(authedCtx(owner), domain.AttachRequest{
		BusinessID: businessID.String(),
		FileName:   "fy25.pdf",
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyAttached)
}

func TestIDFor(t *testing.T) {
	f := setup(t)
	owner := f.genID.Generate()
	businessID := f.seedBusiness(t, owner)

	id, err := f.svc.IDFor(context.Background(), businessID.Int64())
	require.NoError(t, err)
	assert.Nil(t, id)

	attached, err := f.svc.Attach(authedCtx(owner), domain.AttachRequest{
		BusinessID: businessID.String(),
		FileName:   "fy24.pdf",
	})
	require.NoError(t, err)

	id, err = f.svc.IDFor(context.Background(), businessID.Int64())
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, attached.ID, snowflake.ID(*id).String())
}

func TestGet_RequiresAuthAndExistence(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Get(context.Background(), f.genID.Generate().String())
	assert.ErrorIs(t, err, businessdomain.ErrUnauthenticated)

	_, err = f.svc.Get(authedCtx(f.genID.Generate()), f.genID.Generate().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
