package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/caseforge/caseforge/internal/domain"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode through a pooled buffer so a marshal failure can't leave a
	// half-written body behind the already-sent headers.
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgUserNotFoundError   = "User not found"
	ErrMsgCaseNotFoundError   = "Case not found"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgCaseEmptyError      = "Case has no items"
	ErrMsgNotEnoughMoneyError = "Not enough money"
	ErrMsgTryAgainError       = "Could not complete the opening. Please try again"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Internal detail never reaches the client: anything not in the
// taxonomy collapses to a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrCaseNotFound):
		return http.StatusNotFound, ErrMsgCaseNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrEmptyCase):
		return http.StatusBadRequest, ErrMsgCaseEmptyError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrConcurrencyConflict):
		// Retries are exhausted by the time this surfaces.
		return http.StatusConflict, ErrMsgTryAgainError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
