package server

import (
	"net/http"
	"testing"

	balancesheetdomain "github.com/param211/corpmart/internal/balancesheet/domain"
	businessdomain "github.com/param211/corpmart/internal/business/domain"
	chatbotdomain "github.com/param211/corpmart/internal/chatbot/domain"
	contactdomain "github.com/param211/corpmart/internal/contactrequest/domain"
	userdomain "github.com/param211/corpmart/internal/user/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapError_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		typ    string
	}{
		{"business not found", businessdomain.ErrNotFound, http.StatusNotFound, "not_found"},
		{"balancesheet not found", balancesheetdomain.ErrNotFound, http.StatusNotFound, "not_found"},
		{"unauthenticated", businessdomain.ErrUnauthenticated, http.StatusUnauthorized, "unauthorized"},
		{"bad token", userdomain.ErrInvalidToken, http.StatusUnauthorized, "unauthorized"},
		{"not staff", businessdomain.ErrNotStaff, http.StatusForbidden, "forbidden"},
		{"not owner", balancesheetdomain.ErrNotOwner, http.StatusForbidden, "forbidden"},
		{"duplicate contact", contactdomain.ErrAlreadyRequested, http.StatusConflict, "conflict"},
		{"duplicate sheet", balancesheetdomain.ErrAlreadyAttached, http.StatusConflict, "conflict"},
		{"duplicate user", userdomain.ErrAlreadyExists, http.StatusConflict, "conflict"},
		{"invalid id", businessdomain.ErrInvalidID, http.StatusBadRequest, "validation_error"},
		{"invalid otp", userdomain.ErrInvalidOTP, http.StatusBadRequest, "validation_error"},
		{"chatbot off", chatbotdomain.ErrDisabled, http.StatusServiceUnavailable, "service_unavailable"},
		{"unknown", assertAnError{}, http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, payload := mapError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.typ, payload.Type)
		})
	}
}

type assertAnError struct{}

func (assertAnError) Error() string { return "boom" }

func TestMapError_ParamErrorNamesField(t *testing.T) {
	status, payload := mapError(&businessdomain.ParamError{Param: "authorised_capital_min"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "validation_error", payload.Type)
	if assert.Len(t, payload.Errors, 1) {
		assert.Equal(t, "authorised_capital_min", payload.Errors[0].Field)
		assert.Equal(t, "invalid_authorised_capital_min", payload.Errors[0].Code)
	}
}

func TestMapError_ValidationErrorsPassThrough(t *testing.T) {
	status, payload := mapError(newValidationError("business_id", "required", "business_id is required"))
	assert.Equal(t, http.StatusBadRequest, status)
	if assert.Len(t, payload.Errors, 1) {
		assert.Equal(t, "business_id", payload.Errors[0].Field)
		assert.Equal(t, "required", payload.Errors[0].Code)
	}
}
