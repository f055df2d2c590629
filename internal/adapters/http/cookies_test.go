package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/taskdeck/auth-service/internal/domain"
)

func TestSetSessionCookiesAttributes(t *testing.T) {
	t.Parallel()

	session, err := domain.NewSession(domain.NewUserID(), "203.0.113.9", "test-agent", time.Now().UTC())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	rec := httptest.NewRecorder()
	setSessionCookies(rec, session)

	cookies := rec.Result().Cookies()

	var sawSession, sawCSRF bool
	for _, c := range cookies {
		switch c.Name {
		case sessionCookieName:
			sawSession = true
			if !c.HttpOnly {
				t.Error("session cookie must be HttpOnly")
			}
			if c.Value != session.ID().String() {
				t.Errorf("session cookie value = %q, want session id", c.Value)
			}
		case csrfCookieName:
			sawCSRF = true
			// Client scripts must be able to read this one to echo it back
			// in the form field or header.
			if c.HttpOnly {
				t.Error("csrf cookie must not be HttpOnly")
			}
			if c.Value != session.CSRFToken().String() {
				t.Errorf("csrf cookie value = %q, want csrf token", c.Value)
			}
		default:
			t.Errorf("unexpected cookie %q", c.Name)
			continue
		}
		if !c.Secure {
			t.Errorf("%s must be Secure", c.Name)
		}
		if c.Path != "/" {
			t.Errorf("%s Path = %q, want /", c.Name, c.Path)
		}
		if c.MaxAge != int(domain.SessionDuration.Seconds()) {
			t.Errorf("%s MaxAge = %d, want %d", c.Name, c.MaxAge, int(domain.SessionDuration.Seconds()))
		}
	}
	if !sawSession || !sawCSRF {
		t.Fatalf("missing cookie: session=%v csrf=%v", sawSession, sawCSRF)
	}
}

func TestClearSessionCookiesExpiresBoth(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	clearSessionCookies(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("got %d cookies, want 2", len(cookies))
	}
	for _, c := range cookies {
		if c.Name != sessionCookieName && c.Name != csrfCookieName {
			t.Errorf("unexpected cookie %q", c.Name)
		}
		if c.Value != "" {
			t.Errorf("%s value = %q, want empty", c.Name, c.Value)
		}
		if c.MaxAge >= 0 {
			t.Errorf("%s MaxAge = %d, want negative", c.Name, c.MaxAge)
		}
	}
}
