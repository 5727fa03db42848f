package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"order-desk/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status, code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().
		Str("error_code", code).
		Str("error", message).
		Int("status", status).
		Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// statusForCode maps a domain error code to an HTTP status. Insufficient cash
// is a well-formed request that fails the payment rule, so it maps to 422
// rather than 400; an unknown promotion kind is a catalogue bug and stays 500.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeValidation, model.ErrCodeInvalidJSON,
		model.ErrCodeEmptyCart, model.ErrCodeInvalidQuantity, model.ErrCodeInvalidPrice:
		return http.StatusBadRequest
	case model.ErrCodeInsufficientCash:
		return http.StatusUnprocessableEntity
	case model.ErrCodeProductNotFound, model.ErrCodePromotionNotFound,
		model.ErrCodeCartNotFound, model.ErrCodeItemNotFound, model.ErrCodeOrderNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeDomainError maps a service error onto the API error contract.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, statusForCode(domainErr.Code), domainErr.Code, domainErr.Message, logger)
		return
	}

	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}
