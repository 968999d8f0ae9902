package domain

import (
	"context"
	"errors"
)

type Service interface {
	// Attach records sheet metadata for a business the caller owns.
	Attach(ctx context.Context, req AttachRequest) (*Response, error)
	// Get returns a sheet by id for an authenticated caller.
	Get(ctx context.Context, sheetID string) (*Response, error)
	// IDFor reports the sheet id for a business, nil when none exists.
	IDFor(ctx context.Context, businessID int64) (*int64, error)
}

type AttachRequest struct {
	BusinessID string `json:"-"`
	FileName   string `json:"file_name"`
}

type Response struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`
	FileName   string `json:"file_name"`
	UploadedOn string `json:"uploaded_on"`
}

var (
	ErrNotFound        = errors.New("balancesheet_not_found")
	ErrInvalidID       = errors.New("invalid_balancesheet_id")
	ErrInvalidFileName = errors.New("invalid_file_name")
	ErrAlreadyAttached = errors.New("balancesheet_already_attached")
	ErrNotOwner        = errors.New("not_business_owner")
)
