package repository

import (
	"context"
	"errors"

	"github.com/param211/corpmart/internal/user/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertUser(ctx context.Context, db *gorm.DB, user *domain.User) error {
	return db.WithContext(ctx).Create(user).Error
}

func (r *repo) FindUserByID(ctx context.Context, db *gorm.DB, id int64) (*domain.User, error) {
	var user domain.User
	err := db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repo) FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.User, error) {
	var user domain.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repo) FindUserByMobile(ctx context.Context, db *gorm.DB, mobile string) (*domain.User, error) {
	var user domain.User
	err := db.WithContext(ctx).Where("mobile = ?", mobile).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repo) UpsertOTP(ctx context.Context, db *gorm.DB, otp *domain.OneTimePassword) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"otp", "updated_at"}),
	}).Create(otp).Error
}

func (r *repo) FindOTPByUserID(ctx context.Context, db *gorm.DB, userID int64) (*domain.OneTimePassword, error) {
	var otp domain.OneTimePassword
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&otp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *repo) DeleteOTP(ctx context.Context, db *gorm.DB, userID int64) error {
	return db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.OneTimePassword{}).Error
}

func (r *repo) InsertToken(ctx context.Context, db *gorm.DB, token *domain.AuthToken) error {
	return db.WithContext(ctx).Create(token).Error
}

func (r *repo) FindTokenByKey(ctx context.Context, db *gorm.DB, key string) (*domain.AuthToken, error) {
	var token domain.AuthToken
	err := db.WithContext(ctx).Where("key = ?", key).First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}
