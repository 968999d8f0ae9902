package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	InsertUser(ctx context.Context, db *gorm.DB, user *User) error
	FindUserByID(ctx context.Context, db *gorm.DB, id int64) (*User, error)
	FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*User, error)
	FindUserByMobile(ctx context.Context, db *gorm.DB, mobile string) (*User, error)

	UpsertOTP(ctx context.Context, db *gorm.DB, otp *OneTimePassword) error
	FindOTPByUserID(ctx context.Context, db *gorm.DB, userID int64) (*OneTimePassword, error)
	DeleteOTP(ctx context.Context, db *gorm.DB, userID int64) error

	InsertToken(ctx context.Context, db *gorm.DB, token *AuthToken) error
	FindTokenByKey(ctx context.Context, db *gorm.DB, key string) (*AuthToken, error)
}
