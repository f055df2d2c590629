package application

import (
	"context"

	"github.com/taskdeck/auth-service/internal/domain"
)

// recordAttempt stores a login outcome for the audit trail. Audit writes
// never fail the login itself.
func (s *Service) recordAttempt(ctx context.Context, userID *domain.UserID, req LoginRequest, status, reason string) {
	if err := s.loginAttempts.Insert(ctx, domain.LoginAttempt{
		UserID:        userID,
		AttemptAt:     s.nowFn(),
		IPAddress:     req.IPAddress,
		UserAgent:     req.UserAgent,
		Status:        status,
		FailureReason: reason,
	}); err != nil {
		appLogger().WarnContext(ctx, "failed to persist login attempt",
			"operation", "record_login_attempt",
			"outcome", "failure",
			"status", status,
			"reason", reason,
			"error", err,
		)
	}
}

// securityEvent emits a structured security log entry. Events share one field
// shape so downstream alerting can key on security_event alone.
func (s *Service) securityEvent(ctx context.Context, event string, fields ...any) {
	args := append([]any{"security_event", event}, fields...)
	appLogger().WarnContext(ctx, "security event", args...)
}
