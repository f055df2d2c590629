package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskdeck/auth-service/internal/domain"
)

type apiError struct {
	Status  string              `json:"status"`
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// setSecurityHeaders applies the shared security header set. Every response,
// success or failure, carries these.
func setSecurityHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("X-Frame-Options", "DENY")
	h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
	h.Set("Cache-Control", "no-store")
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	setSecurityHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, map[string]any{
		"status": "success",
		"data":   data,
	})
}

func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]any{
		"status":  "success",
		"message": message,
	})
}

func writeError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, apiError{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}

// mapDomainError translates domain failures to HTTP status and stable codes.
// Security-sensitive failures deliberately share vague messages.
func mapDomainError(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "VALIDATION_ERROR", err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password"
	case errors.Is(err, domain.ErrAccountLocked):
		return http.StatusTooManyRequests, "ACCOUNT_LOCKED", "account temporarily locked"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "invalid or missing credentials"
	case errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized, "SESSION_EXPIRED", "session expired"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "EMAIL_TAKEN", "email already registered"
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, "RATE_LIMITED", "too many requests"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
	}
}

func writeMappedError(ctx context.Context, w http.ResponseWriter, operation string, err error) {
	status, code, msg := mapDomainError(err)
	logHTTPOperationError(ctx, operation, status, code, msg, err)

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, status, apiError{
			Status:  "error",
			Code:    code,
			Message: msg,
			Fields:  validationErr.Fields,
		})
		return
	}
	writeError(w, status, code, msg)
}
