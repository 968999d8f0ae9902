package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	businessdomain "github.com/param211/corpmart/internal/business/domain"
	"github.com/param211/corpmart/internal/contactrequest/domain"
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
		log:        p.Log.Named("contactrequest.service"),
		genID:      p.GenID,
		repo:       p.Repo,
		businesses: p.Businesses,
	}
}

// Create inserts directly and lets the unique constraint arbitrate duplicate
// requests. No read-before-write; concurrent duplicates collapse to one 409.
func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	caller, ok := identity.FromContext(ctx)
	if !ok {
		return nil, businessdomain.ErrUnauthenticated
	}

	businessID, err := snowflake.ParseString(strings.TrimSpace(req.BusinessID))
	if err != nil || businessID == 0 {
		return nil, businessdomain.ErrInvalidID
	}

	business, err := s.businesses.FindByID(ctx, s.db, businessID.Int64())
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, businessdomain.ErrNotFound
	}

	record := &domain.ContactRequest{
		ID:          s.genID.Generate().Int64(),
		RequestedBy: caller.UserID.Int64(),
		BusinessID:  business.ID,
		RequestedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, s.db, record); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrAlreadyRequested
		}
		return nil, err
	}

	s.log.Info("contact request filed",
		zap.String("business_id", snowflake.ID(business.ID).String()),
		zap.String("requested_by", caller.UserID.String()),
	)

	resp := toResponse(record)
	return &resp, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	caller, ok := identity.FromContext(ctx)
	if !ok {
		return nil, businessdomain.ErrUnauthenticated
	}

	records, err := s.repo.ListByRequester(ctx, s.db, caller.UserID.Int64())
	if err != nil {
		return nil, err
	}

	responses := make([]domain.Response, 0, len(records))
	for i := range records {
		responses = append(responses, toResponse(&records[i]))
	}
	return responses, nil
}

func (s *Service) HasContacted(ctx context.Context, userID, businessID int64) (bool, error) {
	return s.repo.Exists(ctx, s.db, userID, businessID)
}

func toResponse(record *domain.ContactRequest) domain.Response {
	return domain.Response{
		ID:          snowflake.ID(record.ID).String(),
		BusinessID:  snowflake.ID(record.BusinessID).String(),
		Processed:   record.Processed,
		Status:      record.Status,
		RequestedAt: record.RequestedAt.UTC().Format(time.RFC3339),
	}
}
