package domain

import "strings"

// Password length policy. Length is the only structural requirement;
// composition rules push users toward predictable substitutions, so the
// policy instead rejects known-common passwords outright.
const (
	MinPasswordLength = 12
	MaxPasswordLength = 128
)

// commonPasswords are rejected case-insensitively even when they satisfy the
// length bounds. The list only needs entries that clear the 12-character
// minimum; anything shorter fails the length check first.
var commonPasswords = []string{
	"passwordpassword",
	"password1234",
	"password12345",
	"password123456",
	"qwertyuiop12",
	"qwertyuiopas",
	"letmeinletmein",
	"adminadminadmin",
	"administrator",
	"123456789012",
	"1234567890123",
	"iloveyouiloveyou",
	"welcome12345",
	"changemenow!",
	"trustno1trustno1",
}

// Password wraps a plaintext credential on its way to the hasher. It is never
// persisted; persistence only ever sees the opaque hash string.
type Password struct {
	value string
}

// NewPassword applies the full policy: length bounds plus the common-password
// denylist. Use for new credentials (registration, password change).
func NewPassword(plaintext string) (Password, error) {
	if err := checkPasswordLength(plaintext); err != nil {
		return Password{}, err
	}
	lowered := strings.ToLower(plaintext)
	for _, banned := range commonPasswords {
		if lowered == banned {
			return Password{}, NewValidationError("password", "password is too common")
		}
	}
	return Password{value: plaintext}, nil
}

// NewPasswordUnchecked applies only the length bounds. Use for login input,
// where an existing credential may predate the denylist.
func NewPasswordUnchecked(plaintext string) (Password, error) {
	if err := checkPasswordLength(plaintext); err != nil {
		return Password{}, err
	}
	return Password{value: plaintext}, nil
}

func checkPasswordLength(plaintext string) error {
	if len(plaintext) < MinPasswordLength {
		return NewValidationError("password", "password must be at least 12 characters")
	}
	if len(plaintext) > MaxPasswordLength {
		return NewValidationError("password", "password must be 128 characters or fewer")
	}
	return nil
}

// Value exposes the plaintext for the hashing collaborator.
func (p Password) Value() string { return p.value }

// Equals compares plaintexts in constant time.
func (p Password) Equals(other Password) bool {
	return ConstantTimeEqual(p.value, other.value)
}
