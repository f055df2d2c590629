package domain

import (
	"strings"
	"testing"
)

func TestNewCSRFTokenFormat(t *testing.T) {
	t.Parallel()

	token, err := NewCSRFToken()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(token.String()) != 64 {
		t.Fatalf("token length = %d, want 64", len(token.String()))
	}
	if _, err := ParseCSRFToken(token.String()); err != nil {
		t.Fatalf("generated token fails validation: %v", err)
	}

	other, err := NewCSRFToken()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if token.Equals(other) {
		t.Fatalf("two generated tokens compared equal")
	}
}

func TestParseCSRFToken(t *testing.T) {
	t.Parallel()

	valid := strings.Repeat("0f", 32)
	cases := []struct {
		name      string
		raw       string
		wantError bool
	}{
		{name: "valid", raw: valid, wantError: false},
		{name: "empty", raw: "", wantError: true},
		{name: "too short", raw: valid[:62], wantError: true},
		{name: "too long", raw: valid + "ab", wantError: true},
		{name: "uppercase hex rejected", raw: strings.ToUpper(valid), wantError: true},
		{name: "non-hex characters", raw: strings.Repeat("zz", 32), wantError: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseCSRFToken(tc.raw)
			if tc.wantError && err == nil {
				t.Fatalf("expected error for %q", tc.raw)
			}
			if !tc.wantError && err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}
		})
	}
}

func TestCSRFTokenMatchesRaw(t *testing.T) {
	t.Parallel()

	token, err := ParseCSRFToken(strings.Repeat("ab", 32))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !token.MatchesRaw(strings.Repeat("ab", 32)) {
		t.Fatalf("token must match identical raw value")
	}
	if token.MatchesRaw(strings.Repeat("cd", 32)) {
		t.Fatalf("token matched different raw value")
	}
	if token.MatchesRaw("") {
		t.Fatalf("token matched empty candidate")
	}
}
