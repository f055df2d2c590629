package http

import (
	"net/http"

	"github.com/taskdeck/auth-service/internal/domain"
)

// Cookie names use the __Host- prefix so browsers refuse them unless they are
// Secure, host-only, and Path=/. The CSRF form field name pairs with the
// CSRF cookie for the double-submit check.
const (
	sessionCookieName = "__Host-session"
	csrfCookieName    = "__Host-csrf"
	csrfFormField     = "_csrf"
)

func setSessionCookies(w http.ResponseWriter, session domain.Session) {
	maxAge := int(domain.SessionDuration.Seconds())
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID().String(),
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	// The CSRF cookie is readable by scripts on purpose: the double-submit
	// check needs the client to copy the value into the _csrf field or the
	// X-CSRF-Token header, which an HttpOnly cookie would make impossible.
	// A cross-site attacker still cannot read it.
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    session.CSRFToken().String(),
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{sessionCookieName, csrfCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Secure:   true,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// cookieValue returns the named cookie's value, or "" when absent.
func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
