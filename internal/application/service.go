package application

import (
	"log/slog"
	"time"

	"github.com/taskdeck/auth-service/internal/ports"
)

const serviceName = "taskdeck-auth"

// Service holds the authentication use-cases. All security policy decisions
// live here or in domain; adapters only translate transport concerns.
type Service struct {
	users         ports.UserRepository
	sessions      ports.SessionRepository
	loginAttempts ports.LoginAttemptRepository
	hasher        ports.PasswordHasher
	nowFn         func() time.Time
}

type Dependencies struct {
	Users         ports.UserRepository
	Sessions      ports.SessionRepository
	LoginAttempts ports.LoginAttemptRepository
	Hasher        ports.PasswordHasher
}

func NewService(deps Dependencies) *Service {
	return &Service{
		users:         deps.Users,
		sessions:      deps.Sessions,
		loginAttempts: deps.LoginAttempts,
		hasher:        deps.Hasher,
		nowFn:         func() time.Time { return time.Now().UTC() },
	}
}

func appLogger() *slog.Logger {
	return slog.Default().With(
		"service", serviceName,
		"module", "application",
	)
}
