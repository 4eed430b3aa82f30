package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fennwick/TallyBot_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers already sent, nothing more we can do for the client.
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
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgInvalidBodyError    = "Invalid request body"

	ErrMsgNotEnoughPointsError  = "Not enough points"
	ErrMsgUnknownGiftCardError  = "That gift card doesn't exist"
	ErrMsgNothingToConvertError = "You have no gift cards to convert"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Cooldown errors keep their own message so callers see the remaining wait.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var cooldownErr domain.ClaimOnCooldownError
	if errors.As(err, &cooldownErr) {
		return http.StatusTooManyRequests, cooldownErr.Error()
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughPointsError
	case errors.Is(err, domain.ErrUnknownCard):
		return http.StatusBadRequest, ErrMsgUnknownGiftCardError
	case errors.Is(err, domain.ErrNothingToConvert):
		return http.StatusBadRequest, ErrMsgNothingToConvertError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
