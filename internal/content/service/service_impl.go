package service

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/param211/corpmart/internal/content/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("content.service"),
		repo: p.Repo,
	}
}

func (s *Service) Blogs(ctx context.Context) ([]domain.BlogResponse, error) {
	blogs, err := s.repo.ListBlogs(ctx, s.db)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.BlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		responses = append(responses, domain.BlogResponse{
			ID:        snowflake.ID(blog.ID).String(),
			Title:     blog.Title,
			Content:   blog.Content,
			Author:    blog.Author,
			UpdatedAt: blog.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return responses, nil
}

func (s *Service) Testimonials(ctx context.Context) ([]domain.TestimonialResponse, error) {
	testimonials, err := s.repo.ListTestimonials(ctx, s.db)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.TestimonialResponse, 0, len(testimonials))
	for _, testimonial := range testimonials {
		responses = append(responses, domain.TestimonialResponse{
			ID:      snowflake.ID(testimonial.ID).String(),
			Author:  testimonial.Author,
			Content: testimonial.Content,
		})
	}
	return responses, nil
}
