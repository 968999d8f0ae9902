package domain

import "context"

type Service interface {
	// Record notes that a user opened a business detail page. Repeat visits
	// are absorbed; the original timestamp survives.
	Record(ctx context.Context, userID, businessID int64) error
	List(ctx context.Context) ([]Response, error)
}

type Response struct {
	BusinessID string `json:"business_id"`
	ViewedAt   string `json:"viewed_at"`
}
