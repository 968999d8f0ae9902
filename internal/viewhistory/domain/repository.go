package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, record *ViewHistory) error
	ListByViewer(ctx context.Context, db *gorm.DB, viewedBy int64) ([]ViewHistory, error)
}
