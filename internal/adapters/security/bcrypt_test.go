package security

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)
	hash, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if err := h.Compare(hash, "correct horse battery staple"); err != nil {
		t.Fatalf("Compare with matching password: %v", err)
	}
	if err := h.Compare(hash, "correct horse battery stapler"); err == nil {
		t.Fatal("Compare accepted a wrong password")
	}
}

func TestLongPassphrasesSurviveBcryptLimit(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)
	long := strings.Repeat("a very long passphrase ", 6) // 138 bytes, over bcrypt's 72
	hash, err := h.Hash(long)
	if err != nil {
		t.Fatalf("Hash long passphrase: %v", err)
	}
	if err := h.Compare(hash, long); err != nil {
		t.Fatalf("Compare long passphrase: %v", err)
	}
	// The pre-hash must not collapse distinct inputs past byte 72.
	if err := h.Compare(hash, long+"x"); err == nil {
		t.Fatal("Compare accepted a passphrase differing past the bcrypt input limit")
	}
}

func TestZeroCostFallsBackToDefault(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(0)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("cost = %d, want %d", h.cost, bcrypt.DefaultCost)
	}
}
