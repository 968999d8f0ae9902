package domain

import "context"

type Service interface {
	Blogs(ctx context.Context) ([]BlogResponse, error)
	Testimonials(ctx context.Context) ([]TestimonialResponse, error)
}

type BlogResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	UpdatedAt string `json:"updated_at"`
}

type TestimonialResponse struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
}
