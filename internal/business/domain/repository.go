package domain

import (
	"context"

	"github.com/param211/corpmart/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, business *Business) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Business, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter, page pagination.Pagination) ([]Business, int64, error)
	ListByOwner(ctx context.Context, db *gorm.DB, ownerID int64) ([]Business, error)
	Update(ctx context.Context, db *gorm.DB, business *Business) error
	MaxValues(ctx context.Context, db *gorm.DB) (MaxValues, error)
}
