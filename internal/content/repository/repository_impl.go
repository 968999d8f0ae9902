package repository

import (
	"context"

	"github.com/param211/corpmart/internal/content/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ListBlogs(ctx context.Context, db *gorm.DB) ([]domain.Blog, error) {
	var blogs []domain.Blog
	err := db.WithContext(ctx).
		Order("updated_at DESC, id ASC").
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *repo) ListTestimonials(ctx context.Context, db *gorm.DB) ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial
	err := db.WithContext(ctx).
		Order("updated_at DESC, id ASC").
		Find(&testimonials).Error
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}
