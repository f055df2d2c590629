package http

import (
	"net/http"
	"strconv"

	"github.com/taskdeck/auth-service/internal/ports"
)

// rateLimit throttles per IP and action. The action names the counter bucket;
// an empty action falls back to the request path so unnamed routes still get
// isolated buckets. The windowing algorithm belongs to the limiter; this
// middleware only wires request -> limiter -> response.
func rateLimit(limiter ports.RateLimiter, cfg ports.RateLimitConfig, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := readIP(r)
			bucket := action
			if bucket == "" {
				bucket = r.URL.Path
			}

			res, err := limiter.CheckLimit(r.Context(), ip, bucket, cfg)
			if err != nil {
				// Limiter outage must not take logins down with it.
				httpLogger().WarnContext(r.Context(), "rate limiter unavailable",
					"operation", "rate_limit",
					"outcome", "warning",
					"action", bucket,
					"error", err,
				)
				next.ServeHTTP(w, r)
				return
			}

			if !res.Allowed {
				securityEvent(r.Context(), "rate_limit_exceeded",
					"ip", ip,
					"action", bucket,
				)
				retryAfter := res.RetryAfterSeconds
				if retryAfter <= 0 {
					retryAfter = int(cfg.Window.Seconds())
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
