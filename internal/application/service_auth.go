package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskdeck/auth-service/internal/domain"
)

// Register creates a new account. Value objects reject malformed input before
// anything touches storage; the email-uniqueness check stays a repository
// concern because only storage can answer it atomically.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	email, err := domain.NewEmail(req.Email)
	if err != nil {
		return RegisterResponse{}, err
	}
	password, err := domain.NewPassword(req.Password)
	if err != nil {
		return RegisterResponse{}, err
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return RegisterResponse{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return RegisterResponse{}, domain.ErrEmailTaken
	}

	passwordHash, err := s.hasher.Hash(password.Value())
	if err != nil {
		return RegisterResponse{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.NewUser(domain.NewUserID(), email, passwordHash, s.nowFn())
	if err := s.users.Save(ctx, user); err != nil {
		return RegisterResponse{}, fmt.Errorf("save user: %w", err)
	}

	return RegisterResponse{UserID: user.ID()}, nil
}

// Login verifies credentials and starts a session. The lockout check gates
// the attempt before any credential work: a blocked attempt is rejected
// without consuming a failure, and the caller cannot distinguish a lock from
// bad credentials except through the dedicated ErrAccountLocked mapping.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	email, err := domain.NewEmail(req.Email)
	if err != nil {
		return LoginResponse{}, domain.ErrInvalidCredentials
	}
	if _, err := domain.NewPasswordUnchecked(req.Password); err != nil {
		s.recordAttempt(ctx, nil, req, domain.AttemptStatusFailed, "MALFORMED_PASSWORD")
		return LoginResponse{}, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.recordAttempt(ctx, nil, req, domain.AttemptStatusFailed, "USER_NOT_FOUND")
			return LoginResponse{}, domain.ErrInvalidCredentials
		}
		return LoginResponse{}, fmt.Errorf("find user: %w", err)
	}

	now := s.nowFn()
	if user.IsLocked(now) {
		userID := user.ID()
		s.recordAttempt(ctx, &userID, req, domain.AttemptStatusBlocked, "ACCOUNT_LOCKED")
		s.securityEvent(ctx, "login_blocked_lockout",
			"email", email.Normalized(),
			"locked_until", user.LockedUntil(),
		)
		return LoginResponse{}, domain.ErrAccountLocked
	}

	if err := s.hasher.Compare(user.PasswordHash(), req.Password); err != nil {
		failed := user.RecordFailedLogin(now)
		if saveErr := s.users.Save(ctx, failed); saveErr != nil {
			appLogger().ErrorContext(ctx, "failed to persist lockout state",
				"operation", "login",
				"outcome", "failure",
				"error", saveErr,
			)
			return LoginResponse{}, fmt.Errorf("save lockout state: %w", saveErr)
		}
		userID := user.ID()
		s.recordAttempt(ctx, &userID, req, domain.AttemptStatusFailed, "INVALID_PASSWORD")
		if failed.IsLocked(now) {
			s.securityEvent(ctx, "account_lockout_triggered",
				"email", email.Normalized(),
				"failed_attempts", failed.FailedLoginAttempts(),
				"locked_until", failed.LockedUntil(),
			)
		}
		return LoginResponse{}, domain.ErrInvalidCredentials
	}

	loggedIn := user.RecordSuccessfulLogin(now, req.IPAddress, req.UserAgent)
	if err := s.users.Save(ctx, loggedIn); err != nil {
		return LoginResponse{}, fmt.Errorf("save user: %w", err)
	}

	session, err := domain.NewSession(loggedIn.ID(), req.IPAddress, req.UserAgent, now)
	if err != nil {
		return LoginResponse{}, fmt.Errorf("create session: %w", err)
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return LoginResponse{}, fmt.Errorf("save session: %w", err)
	}

	userID := loggedIn.ID()
	s.recordAttempt(ctx, &userID, req, domain.AttemptStatusSuccess, "")

	return LoginResponse{User: loggedIn, Session: session}, nil
}

// Logout deletes the session named by the cookie. Unknown or malformed ids
// succeed silently; logout is idempotent.
func (s *Service) Logout(ctx context.Context, rawSessionID string) error {
	sessionID, err := domain.ParseSessionID(rawSessionID)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// LogoutAll deletes every session owned by the user.
func (s *Service) LogoutAll(ctx context.Context, userID domain.UserID) error {
	if err := s.sessions.DeleteAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	return nil
}

// ChangePassword verifies the current credential, stores the new hash, and
// invalidates every session for the user so stolen sibling sessions die with
// the old password. The caller re-authenticates afterwards.
func (s *Service) ChangePassword(ctx context.Context, userID domain.UserID, req ChangePasswordRequest) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash(), req.CurrentPassword); err != nil {
		return domain.ErrInvalidCredentials
	}

	newPassword, err := domain.NewPassword(req.NewPassword)
	if err != nil {
		return err
	}
	newHash, err := s.hasher.Hash(newPassword.Value())
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	updated := user.UpdatePassword(newHash, s.nowFn())
	if err := s.users.Save(ctx, updated); err != nil {
		return fmt.Errorf("save user: %w", err)
	}

	if err := s.sessions.DeleteAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("invalidate sessions: %w", err)
	}
	s.securityEvent(ctx, "password_changed", "user_id", userID.String())
	return nil
}
