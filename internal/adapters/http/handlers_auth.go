package http

import (
	"net/http"
	"strings"

	"github.com/taskdeck/auth-service/internal/application"
)

const defaultPostLoginPath = "/dashboard"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "malformed form body")
		return
	}

	res, err := h.service.Register(r.Context(), application.RegisterRequest{
		Email:     r.PostFormValue("email"),
		Password:  r.PostFormValue("password"),
		IPAddress: readIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		writeMappedError(r.Context(), w, "register", err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"user_id": res.UserID.String()})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "malformed form body")
		return
	}

	res, err := h.service.Login(r.Context(), application.LoginRequest{
		Email:     r.PostFormValue("email"),
		Password:  r.PostFormValue("password"),
		IPAddress: readIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		writeMappedError(r.Context(), w, "login", err)
		return
	}

	setSessionCookies(w, res.Session)
	setSecurityHeaders(w)
	http.Redirect(w, r, postLoginTarget(r), http.StatusSeeOther)
}

// postLoginTarget picks the navigation target after a successful login. The
// redirectTo value goes through the same safety filter as the one we emit;
// anything suspicious falls back to the dashboard.
func postLoginTarget(r *http.Request) string {
	target := r.PostFormValue("redirectTo")
	if target == "" {
		target = r.URL.Query().Get("redirectTo")
	}
	if target == "" || strings.HasPrefix(target, "/auth/") || !isSafeRedirectPath(target) {
		return defaultPostLoginPath
	}
	return target
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), cookieValue(r, sessionCookieName)); err != nil {
		writeMappedError(r.Context(), w, "logout", err)
		return
	}
	clearSessionCookies(w)
	setSecurityHeaders(w)
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

func (h *Handler) logoutAll(w http.ResponseWriter, r *http.Request) {
	auth, ok := authFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or missing credentials")
		return
	}
	if err := h.service.LogoutAll(r.Context(), auth.User.ID()); err != nil {
		writeMappedError(r.Context(), w, "logout_all", err)
		return
	}
	clearSessionCookies(w)
	setSecurityHeaders(w)
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	auth, ok := authFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or missing credentials")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "malformed form body")
		return
	}

	err := h.service.ChangePassword(r.Context(), auth.User.ID(), application.ChangePasswordRequest{
		CurrentPassword: r.PostFormValue("current_password"),
		NewPassword:     r.PostFormValue("new_password"),
	})
	if err != nil {
		writeMappedError(r.Context(), w, "change_password", err)
		return
	}

	// Every session died with the old password; the client signs in again.
	clearSessionCookies(w)
	setSecurityHeaders(w)
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	auth, ok := authFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or missing credentials")
		return
	}

	user := auth.User
	payload := map[string]any{
		"user_id":    user.ID().String(),
		"email":      user.Email().Value(),
		"created_at": user.CreatedAt(),
	}
	if last := user.LastLoginAt(); last != nil {
		payload["last_login_at"] = *last
	}
	writeSuccess(w, http.StatusOK, payload)
}

func (h *Handler) loginHistory(w http.ResponseWriter, r *http.Request) {
	auth, ok := authFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or missing credentials")
		return
	}

	page := parseIntDefault(r.URL.Query().Get("page"), 1)
	limit := parseIntDefault(r.URL.Query().Get("limit"), 20)
	items, err := h.service.LoginHistory(r.Context(), auth.User.ID(), page, limit)
	if err != nil {
		writeMappedError(r.Context(), w, "login_history", err)
		return
	}

	result := make([]map[string]any, 0, len(items))
	for _, item := range items {
		result = append(result, map[string]any{
			"id":             item.ID,
			"timestamp":      item.Timestamp,
			"status":         item.Status,
			"failure_reason": item.FailureReason,
			"ip_address":     item.IPAddress,
			"user_agent":     item.UserAgent,
		})
	}
	writeSuccess(w, http.StatusOK, result)
}
