package repository

import (
	"context"

	"github.com/param211/corpmart/internal/contactrequest/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, req *domain.ContactRequest) error {
	return db.WithContext(ctx).Create(req).Error
}

func (r *repo) Exists(ctx context.Context, db *gorm.DB, requestedBy, businessID int64) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.ContactRequest{}).
		Where("requested_by = ? AND business_id = ?", requestedBy, businessID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) ListByRequester(ctx context.Context, db *gorm.DB, requestedBy int64) ([]domain.ContactRequest, error) {
	var requests []domain.ContactRequest
	err := db.WithContext(ctx).
		Where("requested_by = ?", requestedBy).
		Order("requested_at DESC, id ASC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
