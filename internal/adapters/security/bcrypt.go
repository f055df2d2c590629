package security

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements password hashing via bcrypt.
// Cost is configurable so security/performance can be tuned by environment.
//
// Passwords are pre-hashed with SHA-256 before bcrypt: bcrypt rejects
// inputs over 72 bytes, while accounts may use passphrases up to 128
// characters.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt-based hasher with default fallback cost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(prehash(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(password))
}
