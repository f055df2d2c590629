package domain

import (
	"regexp"

	"github.com/google/uuid"
)

// UUID v4 only; other versions are rejected so identifiers generated
// elsewhere cannot masquerade as ours.
var uuidV4Pattern = regexp.MustCompile(`^(?i)[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UserID identifies a registered account.
type UserID struct {
	value string
}

// NewUserID generates a cryptographically random v4 identifier.
func NewUserID() UserID {
	return UserID{value: uuid.NewString()}
}

// ParseUserID validates raw external input as a v4 UUID.
func ParseUserID(raw string) (UserID, error) {
	if !uuidV4Pattern.MatchString(raw) {
		return UserID{}, NewValidationError("userId", "user id must be a UUID v4")
	}
	return UserID{value: raw}, nil
}

// ReconstituteUserID rebuilds an identifier from storage without re-validating.
func ReconstituteUserID(value string) UserID {
	return UserID{value: value}
}

func (id UserID) String() string { return id.value }

// Equals uses constant-time comparison; identifiers double as capability
// handles in cookies and must not leak through timing.
func (id UserID) Equals(other UserID) bool {
	return ConstantTimeEqual(id.value, other.value)
}

// IsZero reports whether the identifier is unset.
func (id UserID) IsZero() bool { return id.value == "" }

// SessionID identifies one authenticated browser session.
type SessionID struct {
	value string
}

// NewSessionID generates a cryptographically random v4 identifier.
func NewSessionID() SessionID {
	return SessionID{value: uuid.NewString()}
}

// ParseSessionID validates raw external input as a v4 UUID.
func ParseSessionID(raw string) (SessionID, error) {
	if !uuidV4Pattern.MatchString(raw) {
		return SessionID{}, NewValidationError("sessionId", "session id must be a UUID v4")
	}
	return SessionID{value: raw}, nil
}

// ReconstituteSessionID rebuilds an identifier from storage without re-validating.
func ReconstituteSessionID(value string) SessionID {
	return SessionID{value: value}
}

func (id SessionID) String() string { return id.value }

func (id SessionID) Equals(other SessionID) bool {
	return ConstantTimeEqual(id.value, other.value)
}

func (id SessionID) IsZero() bool { return id.value == "" }
