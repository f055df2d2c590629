package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskdeck/auth-service/internal/domain"
)

// CurrentUser resolves a session cookie value to the owning user. Every
// failure collapses to ErrUnauthorized so callers cannot distinguish a
// missing session from an expired one or a locked account.
func (s *Service) CurrentUser(ctx context.Context, rawSessionID string) (AuthenticatedContext, error) {
	sessionID, err := domain.ParseSessionID(rawSessionID)
	if err != nil {
		return AuthenticatedContext{}, domain.ErrUnauthorized
	}

	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return AuthenticatedContext{}, domain.ErrUnauthorized
		}
		return AuthenticatedContext{}, fmt.Errorf("find session: %w", err)
	}

	now := s.nowFn()
	if session.IsExpired(now) {
		// The sweeper would get it eventually; deleting eagerly keeps the
		// table honest for DeleteAllForUser counts.
		if delErr := s.sessions.Delete(ctx, sessionID); delErr != nil && !errors.Is(delErr, domain.ErrNotFound) {
			appLogger().WarnContext(ctx, "failed to delete expired session",
				"operation", "current_user",
				"outcome", "warning",
				"error", delErr,
			)
		}
		return AuthenticatedContext{}, domain.ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, session.UserID())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return AuthenticatedContext{}, domain.ErrUnauthorized
		}
		return AuthenticatedContext{}, fmt.Errorf("find user: %w", err)
	}
	if user.IsLocked(now) {
		return AuthenticatedContext{}, domain.ErrUnauthorized
	}

	if session.NeedsRefresh(now.Sub(session.LastActivityAt())) {
		session = session.WithUpdatedActivity(now)
		if err := s.sessions.UpdateActivity(ctx, session.ID(), session.LastActivityAt()); err != nil {
			// Activity tracking is best-effort; authentication still stands.
			appLogger().WarnContext(ctx, "failed to refresh session activity",
				"operation", "current_user",
				"outcome", "warning",
				"error", err,
			)
		}
	}

	return AuthenticatedContext{User: user, Session: session}, nil
}
