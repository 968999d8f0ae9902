package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, sheet *Balancesheet) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Balancesheet, error)
	FindByBusinessID(ctx context.Context, db *gorm.DB, businessID int64) (*Balancesheet, error)
}
