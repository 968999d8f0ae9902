package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	businessdomain "github.com/param211/corpmart/internal/business/domain"
	"github.com/param211/corpmart/internal/identity"
	"github.com/param211/corpmart/internal/viewhistory/domain"
	"github.com/param211/corpmart/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("viewhistory.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

// Record is insert-or-ignore: the unique pair index rejects repeat visits and
// the duplicate error is swallowed, so a view never fails the detail request.
func (s *Service) Record(ctx context.Context, userID, businessID int64) error {
	record := &domain.ViewHistory{
		ID:         s.genID.Generate().Int64(),
		ViewedBy:   userID,
		BusinessID: businessID,
		ViewedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, s.db, record); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil
		}
		return err
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	caller, ok := identity.FromContext(ctx)
	if !ok {
		return nil, businessdomain.ErrUnauthenticated
	}

	records, err := s.repo.ListByViewer(ctx, s.db, caller.UserID.Int64())
	if err != nil {
		return nil, err
	}

	responses := make([]domain.Response, 0, len(records))
	for _, record := range records {
		responses = append(responses, domain.Response{
			BusinessID: snowflake.ID(record.BusinessID).String(),
			ViewedAt:   record.ViewedAt.UTC().Format(time.RFC3339),
		})
	}
	return responses, nil
}
