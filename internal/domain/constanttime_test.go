package domain

import "testing"

func TestConstantTimeEqual(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "empty strings equal", a: "", b: "", want: true},
		{name: "equal values", a: "secret-token", b: "secret-token", want: true},
		{name: "single char mismatch", a: "a", b: "b", want: false},
		{name: "different lengths", a: "short", b: "longer", want: false},
		{name: "mismatch at start", a: "xbcdef", b: "abcdef", want: false},
		{name: "mismatch at end", a: "abcdex", b: "abcdef", want: false},
		{name: "multibyte equal", a: "pässwörd", b: "pässwörd", want: true},
		{name: "multibyte mismatch", a: "pässwörd", b: "pässword", want: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ConstantTimeEqual(tc.a, tc.b); got != tc.want {
				t.Fatalf("ConstantTimeEqual(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
