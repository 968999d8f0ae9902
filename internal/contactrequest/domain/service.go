package domain

import (
	"context"
	"errors"
)

type Service interface {
	// Create files a contact request for the caller. A second request for the
	// same business surfaces ErrAlreadyRequested from the store constraint.
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	// HasContacted reports whether the user already filed a request.
	HasContacted(ctx context.Context, userID, businessID int64) (bool, error)
}

type CreateRequest struct {
	BusinessID string `json:"business_id"`
}

type Response struct {
	ID          string `json:"id"`
	BusinessID  string `json:"business_id"`
	Processed   bool   `json:"processed"`
	Status      string `json:"status"`
	RequestedAt string `json:"requested_at"`
}

var ErrAlreadyRequested = errors.New("contact_already_requested")
