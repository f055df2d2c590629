package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently to 404.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials hides whether email or password failed.
	// The reason is to prevent account-enumeration side channels.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountLocked signals temporary lockout after repeated failed attempts.
	ErrAccountLocked = errors.New("account locked")
	// ErrSessionExpired marks a session whose absolute lifetime has passed.
	ErrSessionExpired = errors.New("session expired")
	// ErrUnauthorized is the generic failure for any session/credential
	// resolution problem; callers outside the core never learn which check failed.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrEmailTaken   = errors.New("email already registered")
	ErrRateLimited  = errors.New("rate limited")
)

// ValidationError carries per-field messages from value-object construction.
// It unwraps to ErrInvalidInput so adapters can keep a single errors.Is branch.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {message}}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Add appends a message for a field, creating the map entry if needed.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], message)
}
