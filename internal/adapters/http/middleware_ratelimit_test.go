package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/taskdeck/auth-service/internal/ports"
)

type fakeLimiter struct {
	result   ports.RateLimitResult
	err      error
	lastIP   string
	lastKey  string
	lastCfg  ports.RateLimitConfig
}

func (f *fakeLimiter) CheckLimit(_ context.Context, ip, action string, cfg ports.RateLimitConfig) (ports.RateLimitResult, error) {
	f.lastIP = ip
	f.lastKey = action
	f.lastCfg = cfg
	return f.result, f.err
}

func (f *fakeLimiter) Reset(context.Context, string, string) error { return nil }

func limitedProbe(limiter ports.RateLimiter, cfg ports.RateLimitConfig, action string) (http.Handler, *bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		w.WriteHeader(http.StatusNoContent)
	})
	return rateLimit(limiter, cfg, action)(next), &reached
}

func TestRateLimitAllowsUnderLimit(t *testing.T) {
	t.Parallel()

	limiter := &fakeLimiter{result: ports.RateLimitResult{Allowed: true, Remaining: 4}}
	handler, reached := limitedProbe(limiter, ports.RateLimitConfig{MaxRequests: 5, Window: time.Minute}, "login")

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !*reached {
		t.Fatalf("allowed request blocked: status %d", rec.Code)
	}
	if limiter.lastIP != "198.51.100.7" {
		t.Fatalf("ip = %q, want first X-Forwarded-For entry", limiter.lastIP)
	}
	if limiter.lastKey != "login" {
		t.Fatalf("action = %q, want login", limiter.lastKey)
	}
}

func TestRateLimitBlocksWithRetryAfter(t *testing.T) {
	t.Parallel()

	limiter := &fakeLimiter{result: ports.RateLimitResult{Allowed: false, RetryAfterSeconds: 7}}
	handler, reached := limitedProbe(limiter, ports.RateLimitConfig{MaxRequests: 5, Window: time.Minute}, "login")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", nil))

	if *reached {
		t.Fatalf("blocked request reached the handler")
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "7" {
		t.Fatalf("Retry-After = %q, want limiter-advised 7", got)
	}
}

func TestRateLimitRetryAfterFallsBackToWindow(t *testing.T) {
	t.Parallel()

	limiter := &fakeLimiter{result: ports.RateLimitResult{Allowed: false}}
	handler, _ := limitedProbe(limiter, ports.RateLimitConfig{MaxRequests: 5, Window: 90 * time.Second}, "login")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", nil))

	if got := rec.Header().Get("Retry-After"); got != "90" {
		t.Fatalf("Retry-After = %q, want window fallback 90", got)
	}
}

func TestRateLimitFailsOpenOnLimiterError(t *testing.T) {
	t.Parallel()

	limiter := &fakeLimiter{err: errors.New("redis down")}
	handler, reached := limitedProbe(limiter, ports.RateLimitConfig{MaxRequests: 5, Window: time.Minute}, "login")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", nil))

	if !*reached {
		t.Fatalf("limiter outage must not block requests: status %d", rec.Code)
	}
}

func TestRateLimitActionFallsBackToPath(t *testing.T) {
	t.Parallel()

	limiter := &fakeLimiter{result: ports.RateLimitResult{Allowed: true}}
	handler, _ := limitedProbe(limiter, ports.RateLimitConfig{MaxRequests: 5, Window: time.Minute}, "")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/some/route", nil))

	if limiter.lastKey != "/some/route" {
		t.Fatalf("action = %q, want request path fallback", limiter.lastKey)
	}
}
