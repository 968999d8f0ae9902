package repository

import (
	"context"

	"github.com/param211/corpmart/internal/chatbot/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, req *domain.ChatbotRequest) error {
	return db.WithContext(ctx).Create(req).Error
}

func (r *repo) ListActiveRecipients(ctx context.Context, db *gorm.DB) ([]domain.ChatbotNotification, error) {
	var recipients []domain.ChatbotNotification
	err := db.WithContext(ctx).
		Where("active = ?", true).
		Find(&recipients).Error
	if err != nil {
		return nil, err
	}
	return recipients, nil
}
