package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListBlogs(ctx context.Context, db *gorm.DB) ([]Blog, error)
	ListTestimonials(ctx context.Context, db *gorm.DB) ([]Testimonial, error)
}
