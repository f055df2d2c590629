package postgres

import (
	"errors"

	"github.com/taskdeck/auth-service/internal/ports"
	"gorm.io/gorm"
)

// Repositories bundles the Postgres-backed implementations of the
// persistence ports behind one constructor so wiring stays in one place.
type Repositories struct {
	Users         ports.UserRepository
	Sessions      ports.SessionRepository
	LoginAttempts ports.LoginAttemptRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:         &userRepository{db: db},
		Sessions:      &sessionRepository{db: db},
		LoginAttempts: &loginAttemptRepository{db: db},
	}
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
