package domain

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

const csrfTokenBytes = 32

var csrfTokenPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// CSRFToken is the per-session secret used by the double-submit cookie
// defense. It is generated once at session creation and never rotated for
// the life of the session.
type CSRFToken struct {
	value string
}

// NewCSRFToken draws 32 random bytes and encodes them as lowercase hex.
func NewCSRFToken() (CSRFToken, error) {
	raw := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return CSRFToken{}, err
	}
	return CSRFToken{value: hex.EncodeToString(raw)}, nil
}

// ParseCSRFToken validates raw external input against the hex format.
func ParseCSRFToken(raw string) (CSRFToken, error) {
	if !csrfTokenPattern.MatchString(raw) {
		return CSRFToken{}, NewValidationError("csrfToken", "csrf token must be 64 lowercase hex characters")
	}
	return CSRFToken{value: raw}, nil
}

// ReconstituteCSRFToken rebuilds a token from storage without re-validating.
func ReconstituteCSRFToken(value string) CSRFToken {
	return CSRFToken{value: value}
}

func (t CSRFToken) String() string { return t.value }

// Equals compares tokens in constant time.
func (t CSRFToken) Equals(other CSRFToken) bool {
	return ConstantTimeEqual(t.value, other.value)
}

// MatchesRaw compares the token against an unparsed candidate in constant
// time. Used where the candidate may not even be well-formed hex.
func (t CSRFToken) MatchesRaw(candidate string) bool {
	return ConstantTimeEqual(t.value, candidate)
}

func (t CSRFToken) IsZero() bool { return t.value == "" }
