package domain

import (
	"context"
	"errors"

	"github.com/param211/corpmart/internal/identity"
)

type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*Response, error)
	// RequestOTP issues a fresh one-time password for the user matching the
	// given email or mobile. Delivery is out of scope; the code is logged.
	RequestOTP(ctx context.Context, req OTPRequest) error
	// VerifyOTP trades a valid code for an opaque auth token.
	VerifyOTP(ctx context.Context, req OTPVerifyRequest) (*TokenResponse, error)
	// Authenticate resolves a token key to the identity it was issued to.
	Authenticate(ctx context.Context, key string) (identity.Identity, error)
	Get(ctx context.Context) (*Response, error)
}

type SignupRequest struct {
	Email            string `json:"email"`
	CountryCode      int    `json:"country_code"`
	Mobile           string `json:"mobile"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	OrganisationName string `json:"organisation_name"`
}

type OTPRequest struct {
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

type OTPVerifyRequest struct {
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
	OTP    string `json:"otp"`
}

type Response struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	CountryCode      int    `json:"country_code"`
	Mobile           string `json:"mobile"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	OrganisationName string `json:"organisation_name"`
}

type TokenResponse struct {
	Token string   `json:"token"`
	User  Response `json:"user"`
}

var (
	ErrNotFound       = errors.New("user_not_found")
	ErrInvalidEmail   = errors.New("invalid_email")
	ErrInvalidMobile  = errors.New("invalid_mobile")
	ErrAlreadyExists  = errors.New("user_already_exists")
	ErrInvalidOTP     = errors.New("invalid_otp")
	ErrExpiredOTP     = errors.New("expired_otp")
	ErrInvalidToken   = errors.New("invalid_token")
	ErrMissingAccount = errors.New("missing_account_reference")
)
