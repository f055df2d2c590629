package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewPassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		plaintext string
		wantError bool
	}{
		{name: "too short", plaintext: "short", wantError: true},
		{name: "eleven chars", plaintext: strings.Repeat("a", 11), wantError: true},
		{name: "exactly minimum", plaintext: strings.Repeat("a", 12), wantError: false},
		{name: "exactly maximum", plaintext: strings.Repeat("a", 128), wantError: false},
		{name: "over maximum", plaintext: strings.Repeat("a", 129), wantError: true},
		{name: "common password", plaintext: "passwordpassword", wantError: true},
		{name: "common password mixed case", plaintext: "PasswordPassword", wantError: true},
		{name: "long but uncommon", plaintext: "correct horse battery staple", wantError: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewPassword(tc.plaintext)
			if tc.wantError && err == nil {
				t.Fatalf("expected error for %q", tc.plaintext)
			}
			if !tc.wantError && err != nil {
				t.Fatalf("expected nil error for %q, got %v", tc.plaintext, err)
			}
		})
	}
}

func TestNewPasswordUncheckedSkipsDenylist(t *testing.T) {
	t.Parallel()

	if _, err := NewPasswordUnchecked("passwordpassword"); err != nil {
		t.Fatalf("unchecked constructor must only enforce length, got %v", err)
	}
	if _, err := NewPasswordUnchecked("short"); err == nil {
		t.Fatalf("unchecked constructor must still enforce minimum length")
	}
	if _, err := NewPasswordUnchecked(strings.Repeat("a", 129)); err == nil {
		t.Fatalf("unchecked constructor must still enforce maximum length")
	}
}

func TestPasswordValidationErrorShape(t *testing.T) {
	t.Parallel()

	_, err := NewPassword("short")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(validationErr.Fields["password"]) == 0 {
		t.Fatalf("expected password field messages, got %v", validationErr.Fields)
	}
}

func TestPasswordEquals(t *testing.T) {
	t.Parallel()

	a, _ := NewPassword("a sufficiently long pass")
	b, _ := NewPassword("a sufficiently long pass")
	c, _ := NewPassword("a different long password")

	if !a.Equals(b) {
		t.Fatalf("identical passwords must compare equal")
	}
	if a.Equals(c) {
		t.Fatalf("different passwords compared equal")
	}
}
