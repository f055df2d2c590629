package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestValidateDoubleSubmitCSRF(t *testing.T) {
	t.Parallel()

	token := strings.Repeat("ab", 32)
	cases := []struct {
		name        string
		formToken   string
		cookieToken string
		want        bool
	}{
		{name: "both present and equal", formToken: token, cookieToken: token, want: true},
		{name: "missing form token", formToken: "", cookieToken: token, want: false},
		{name: "missing cookie token", formToken: token, cookieToken: "", want: false},
		{name: "both missing", formToken: "", cookieToken: "", want: false},
		{name: "mismatch", formToken: token, cookieToken: strings.Repeat("cd", 32), want: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := validateDoubleSubmitCSRF(tc.formToken, tc.cookieToken); got != tc.want {
				t.Fatalf("validateDoubleSubmitCSRF(%q, %q) = %v, want %v", tc.formToken, tc.cookieToken, got, tc.want)
			}
		})
	}
}

func csrfProbe() (http.Handler, *bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		w.WriteHeader(http.StatusNoContent)
	})
	return csrfProtect(next), &reached
}

func postForm(path string, form url.Values, csrfCookie string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if csrfCookie != "" {
		req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: csrfCookie})
	}
	return req
}

func TestCSRFProtectAllowsMatchingPair(t *testing.T) {
	t.Parallel()

	token := strings.Repeat("ef", 32)
	handler, reached := csrfProbe()
	req := postForm("/auth/logout", url.Values{csrfFormField: {token}}, token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !*reached {
		t.Fatalf("matching pair rejected: status %d", rec.Code)
	}
}

func TestCSRFProtectRejectsMissingOrMismatched(t *testing.T) {
	t.Parallel()

	token := strings.Repeat("ef", 32)
	cases := []struct {
		name   string
		form   url.Values
		cookie string
	}{
		{name: "no form token", form: url.Values{}, cookie: token},
		{name: "no cookie", form: url.Values{csrfFormField: {token}}, cookie: ""},
		{name: "neither", form: url.Values{}, cookie: ""},
		{name: "mismatch", form: url.Values{csrfFormField: {strings.Repeat("00", 32)}}, cookie: token},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			handler, reached := csrfProbe()
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, postForm("/auth/logout", tc.form, tc.cookie))

			if *reached {
				t.Fatalf("request passed the csrf check")
			}
			if rec.Code != http.StatusForbidden {
				t.Fatalf("status = %d, want 403", rec.Code)
			}
			if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Fatalf("security headers missing on 403")
			}
			if strings.Contains(rec.Body.String(), "cookie") || strings.Contains(rec.Body.String(), "token") {
				t.Fatalf("403 body leaks which check failed: %s", rec.Body.String())
			}
		})
	}
}

func TestCSRFProtectSkipsSafeMethods(t *testing.T) {
	t.Parallel()

	handler, reached := csrfProbe()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !*reached {
		t.Fatalf("GET blocked by csrf check: status %d", rec.Code)
	}
}

func TestCSRFProtectAcceptsHeaderToken(t *testing.T) {
	t.Parallel()

	token := strings.Repeat("ef", 32)
	handler, reached := csrfProbe()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("X-CSRF-Token", token)
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !*reached {
		t.Fatalf("header token rejected: status %d", rec.Code)
	}
}
