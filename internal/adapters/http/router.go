package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taskdeck/auth-service/internal/application"
	"github.com/taskdeck/auth-service/internal/ports"
)

// Handler is the HTTP adapter entrypoint for the auth use-cases.
type Handler struct {
	service *application.Service
}

// NewHandler constructs an HTTP handler bound to the application service.
func NewHandler(service *application.Service) *Handler {
	return &Handler{service: service}
}

// RouterConfig carries the per-route rate-limit policies and the limiter
// they run against.
type RouterConfig struct {
	Limiter       ports.RateLimiter
	LoginLimit    ports.RateLimitConfig
	RegisterLimit ports.RateLimitConfig
}

// NewRouter registers routes and the middleware stack. Credential endpoints
// are rate limited; every state-changing protected route passes the CSRF
// check; protected routes resolve the session cookie first.
func NewRouter(handler *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	r.Group(func(r chi.Router) {
		r.Use(rateLimit(cfg.Limiter, cfg.LoginLimit, "login"))
		r.Post("/auth/login", handler.login)
	})
	r.Group(func(r chi.Router) {
		r.Use(rateLimit(cfg.Limiter, cfg.RegisterLimit, "register"))
		r.Post("/auth/register", handler.register)
	})

	r.Group(func(r chi.Router) {
		r.Use(handler.requireAuth)
		r.Use(csrfProtect)
		r.Post("/auth/logout", handler.logout)
		r.Post("/auth/logout-all", handler.logoutAll)
		r.Post("/auth/password", handler.changePassword)
		r.Get("/auth/me", handler.me)
		r.Get("/auth/login-history", handler.loginHistory)
	})

	return r
}
