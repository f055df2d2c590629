package ports

import (
	"context"
	"time"

	"github.com/taskdeck/auth-service/internal/domain"
)

// UserRepository defines persistence operations for accounts. Lookups are
// keyed by value-object identity; Save upserts the full aggregate state so
// entity transitions persist as a whole.
type UserRepository interface {
	FindByID(ctx context.Context, id domain.UserID) (domain.User, error)
	FindByEmail(ctx context.Context, email domain.Email) (domain.User, error)
	EmailExists(ctx context.Context, email domain.Email) (bool, error)
	Save(ctx context.Context, user domain.User) error
}

// SessionRepository manages persistent session lifecycle. UpdateActivity is
// separate from Save so the hot last-seen write stays a single-column update.
type SessionRepository interface {
	FindByID(ctx context.Context, id domain.SessionID) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Delete(ctx context.Context, id domain.SessionID) error
	DeleteAllForUser(ctx context.Context, userID domain.UserID) error
	UpdateActivity(ctx context.Context, id domain.SessionID, lastActivityAt time.Time) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// LoginAttemptRepository stores login outcomes for audit and security review.
type LoginAttemptRepository interface {
	Insert(ctx context.Context, attempt domain.LoginAttempt) error
	ListByUser(ctx context.Context, userID domain.UserID, limit, offset int) ([]domain.LoginAttempt, error)
}
