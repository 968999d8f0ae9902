package domain

import (
	"context"
	"errors"
)

type Service interface {
	// Create stores an anonymous lead and fans it out to active recipients.
	Create(ctx context.Context, req CreateRequest) (*Response, error)
}

// Notifier delivers a new lead to one recipient. Delivery mechanics live
// behind this port; failures must not fail the intake.
type Notifier interface {
	Notify(ctx context.Context, recipient ChatbotNotification, lead ChatbotRequest) error
}

type CreateRequest struct {
	Name       string `json:"name"`
	Mobile     string `json:"mobile"`
	LookingFor string `json:"looking_for"`
}

type Response struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Mobile     string `json:"mobile"`
	LookingFor string `json:"looking_for"`
}

var (
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidMobile = errors.New("invalid_mobile")
	ErrDisabled      = errors.New("chatbot_disabled")
)
