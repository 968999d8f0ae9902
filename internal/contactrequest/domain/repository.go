package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, req *ContactRequest) error
	Exists(ctx context.Context, db *gorm.DB, requestedBy, businessID int64) (bool, error)
	ListByRequester(ctx context.Context, db *gorm.DB, requestedBy int64) ([]ContactRequest, error)
}
