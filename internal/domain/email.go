package domain

import (
	"regexp"
	"strings"
)

const maxEmailLength = 254

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a validated address. The original casing is preserved for display
// while the lowercased form is used for storage lookups and equality, so two
// addresses differing only in case resolve to the same account.
type Email struct {
	value      string
	normalized string
}

// NewEmail validates and normalizes raw external input.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Email{}, NewValidationError("email", "email is required")
	}
	if len(trimmed) > maxEmailLength {
		return Email{}, NewValidationError("email", "email must be 254 characters or fewer")
	}
	if !emailPattern.MatchString(trimmed) {
		return Email{}, NewValidationError("email", "email format is invalid")
	}
	return Email{value: trimmed, normalized: strings.ToLower(trimmed)}, nil
}

// ReconstituteEmail trusts already-validated persisted values.
func ReconstituteEmail(value, normalized string) Email {
	return Email{value: value, normalized: normalized}
}

// Value returns the address as originally entered.
func (e Email) Value() string { return e.value }

// Normalized returns the lowercased address used for lookups.
func (e Email) Normalized() string { return e.normalized }

// Equals compares by normalized value, so equality is case-insensitive.
func (e Email) Equals(other Email) bool {
	return e.normalized == other.normalized
}

func (e Email) String() string { return e.value }
