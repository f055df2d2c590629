package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/taskdeck/auth-service/internal/application"
)

const loginPath = "/auth/login"

// requireAuth resolves the session cookie to a user/session pair and stores
// it in the request context. Any failure, missing cookie, unknown or expired
// session, locked account, redirects to the login page identically; nothing
// in the response distinguishes the cases.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawSessionID := cookieValue(r, sessionCookieName)
		if rawSessionID == "" {
			redirectToLogin(w, r)
			return
		}

		auth, err := h.service.CurrentUser(r.Context(), rawSessionID)
		if err != nil {
			redirectToLogin(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyAuth, auth)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// redirectToLogin issues the 303 to the login page. The original path rides
// along as redirectTo only when it is safe to echo; unsafe paths drop the
// parameter entirely rather than being sanitized.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	location := loginPath
	if path := r.URL.Path; shouldCarryRedirect(path) {
		location += "?redirectTo=" + url.QueryEscape(path)
	}
	setSecurityHeaders(w)
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// shouldCarryRedirect decides whether a path may be echoed back as the
// post-login destination. Paths inside the auth flow are excluded to avoid
// redirect loops; paths with header-injection or protocol-relative vectors
// are excluded outright.
func shouldCarryRedirect(path string) bool {
	if strings.HasPrefix(path, "/auth/") {
		return false
	}
	return isSafeRedirectPath(path)
}

// isSafeRedirectPath rejects anything usable for response splitting or a
// protocol-relative redirect: encoded/raw newlines, null bytes, and a
// doubled leading slash.
func isSafeRedirectPath(path string) bool {
	if path == "" || !strings.HasPrefix(path, "/") {
		return false
	}
	if strings.HasPrefix(path, "//") {
		return false
	}
	lowered := strings.ToLower(path)
	for _, bad := range []string{"%0a", "%0d", "\n", "\r", "%00", "\x00"} {
		if strings.Contains(lowered, bad) {
			return false
		}
	}
	return true
}

// authFromContext returns the authenticated user/session pair stored by
// requireAuth.
func authFromContext(ctx context.Context) (application.AuthenticatedContext, bool) {
	v := ctx.Value(ctxKeyAuth)
	auth, ok := v.(application.AuthenticatedContext)
	return auth, ok
}
