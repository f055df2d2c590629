package application

import (
	"time"

	"github.com/taskdeck/auth-service/internal/domain"
)

type RegisterRequest struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type RegisterResponse struct {
	UserID domain.UserID
}

type LoginRequest struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

// LoginResponse carries the freshly created session; the HTTP adapter turns
// it into the session and CSRF cookies.
type LoginResponse struct {
	User    domain.User
	Session domain.Session
}

// AuthenticatedContext is the resolved session/user pair handed to protected
// handlers by the auth middleware.
type AuthenticatedContext struct {
	User    domain.User
	Session domain.Session
}

type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
}

type LoginHistoryItem struct {
	ID            int64
	Timestamp     time.Time
	Status        string
	FailureReason string
	IPAddress     string
	UserAgent     string
}
