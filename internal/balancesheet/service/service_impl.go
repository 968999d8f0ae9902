package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/param211/corpmart/internal/balancesheet/domain"
	businessdomain "github.com/param211/corpmart/internal/business/domain"
	"github.com/param211/corpmart/internal/identity"
	"github.com/param211/corpmart/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Repo       domain.Repository
	Businesses businessdomain.Repository
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	repo       domain.Repository
	businesses businessdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("balancesheet.service"),
		genID:      p.GenID,
		repo:       p.Repo,
		businesses: p.Businesses,
	}
}

func (s *Service) Attach(ctx context.Context, req domain.AttachRequest) (*domain.Response, error) {
	caller, ok := identity.FromContext(ctx)
	if !ok {
		return nil, businessdomain.ErrUnauthenticated
	}

	businessID, err := snowflake.ParseString(strings.TrimSpace(req.BusinessID))
	if err != nil || businessID == 0 {
		return nil, businessdomain.ErrInvalidID
	}

	fileName := strings.TrimSpace(req.FileName)
	if fileName == "" {
		return nil, domain.ErrInvalidFileName
	}

	business, err := s.businesses.FindByID(ctx, s.db, businessID.Int64())
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, businessdomain.ErrNotFound
	}
	if business.PostedBy != caller.UserID.Int64() {
		return nil, domain.ErrNotOwner
	}

	sheet := &domain.Balancesheet{
		ID:         s.genID.Generate().Int64(),
		BusinessID: business.ID,
		FileName:   fileName,
		UploadedOn: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, s.db, sheet); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrAlreadyAttached
		}
		return nil, err
	}

	resp := toResponse(sheet)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, sheetID string) (*domain.Response, error) {
	if _, ok := identity.FromContext(ctx); !ok {
		return nil, businessdomain.ErrUnauthenticated
	}

	id, err := snowflake.ParseString(strings.TrimSpace(sheetID))
	if err != nil || id == 0 {
		return nil, domain.ErrInvalidID
	}

	sheet, err := s.repo.FindByID(ctx, s.db, id.Int64())
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, domain.ErrNotFound
	}

	resp := toResponse(sheet)
	return &resp, nil
}

func (s *Service) IDFor(ctx context.Context, businessID int64) (*int64, error) {
	sheet, err := s.repo.FindByBusinessID(ctx, s.db, businessID)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, nil
	}
	id := sheet.ID
	return &id, nil
}

func toResponse(sheet *domain.Balancesheet) domain.Response {
	return domain.Response{
		ID:         snowflake.ID(sheet.ID).String(),
		BusinessID: snowflake.ID(sheet.BusinessID).String(),
		FileName:   sheet.FileName,
		UploadedOn: sheet.UploadedOn.UTC().Format(time.RFC3339),
	}
}
