package repository

import (
	"context"
	"errors"

	"github.com/param211/corpmart/internal/balancesheet/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, sheet *domain.Balancesheet) error {
	return db.WithContext(ctx).Create(sheet).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Balancesheet, error) {
	var sheet domain.Balancesheet
	err := db.WithContext(ctx).Where("id = ?", id).First(&sheet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sheet, nil
}

func (r *repo) FindByBusinessID(ctx context.Context, db *gorm.DB, businessID int64) (*domain.Balancesheet, error) {
	var sheet domain.Balancesheet
	err := db.WithContext(ctx).Where("business_id = ?", businessID).First(&sheet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sheet, nil
}
