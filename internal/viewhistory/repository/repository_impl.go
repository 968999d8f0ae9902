package repository

import (
	"context"

	"github.com/param211/corpmart/internal/viewhistory/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, record *domain.ViewHistory) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *repo) ListByViewer(ctx context.Context, db *gorm.DB, viewedBy int64) ([]domain.ViewHistory, error) {
	var records []domain.ViewHistory
	err := db.WithContext(ctx).
		Where("viewed_by = ?", viewedBy).
		Order("viewed_at DESC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
