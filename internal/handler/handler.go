package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"product-catalog/internal/middleware"
	"product-catalog/internal/model"

	"github.com/rs/zerolog"
)

// Generic messages returned for server-side failures. Causes are logged, never sent.
const (
	msgInternalError    = "Internal server error"
	msgMethodNotAllowed = "Method not allowed"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful can reach the client.
		return
	}
}

// writeError writes an error response with the given status code, code and message.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	requestID := middleware.RequestIDFromContext(r.Context())

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("error", message).
		Str("code", code).
		Int("status", status).
		Str("request_id", requestID).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         message,
		Code:          code,
		CorrelationID: requestID,
	})
}

// writeServiceError maps a service error to a response. Domain errors become
// 400 with their own message; anything else is an opaque 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, operation string, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, r, http.StatusBadRequest, domainErr.Code, domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).
		Str("operation", operation).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Msg("request failed")
	writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, msgInternalError, logger)
}

// methodNotAllowed writes a 405 response listing the allowed method.
func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed string, logger zerolog.Logger) {
	w.Header().Set("Allow", allowed)
	writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, msgMethodNotAllowed, logger)
}

// NotFound returns a handler writing a JSON 404 for unknown routes.
func NotFound(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, model.ErrCodeNotFound, "Not found", logger)
	}
}
