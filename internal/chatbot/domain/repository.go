package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, req *ChatbotRequest) error
	ListActiveRecipients(ctx context.Context, db *gorm.DB) ([]ChatbotNotification, error)
}
