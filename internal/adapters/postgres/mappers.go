package postgres

import (
	"strings"

	"github.com/taskdeck/auth-service/internal/domain"
)

func toDomainUser(rec userModel) domain.User {
	return domain.ReconstituteUser(domain.UserRecord{
		ID:                  domain.ReconstituteUserID(rec.UserID),
		Email:               domain.ReconstituteEmail(rec.Email, rec.EmailNormalized),
		PasswordHash:        rec.PasswordHash,
		FailedLoginAttempts: rec.FailedLoginAttempts,
		LockedUntil:         rec.LockedUntil,
		LastLoginAt:         rec.LastLoginAt,
		LastLoginIP:         stringValue(rec.LastLoginIP),
		LastLoginUserAgent:  rec.LastLoginUserAgent,
		CreatedAt:           rec.CreatedAt,
		UpdatedAt:           rec.UpdatedAt,
		PasswordChangedAt:   rec.PasswordChangedAt,
	})
}

func toUserModel(user domain.User) userModel {
	rec := user.Record()
	return userModel{
		UserID:              rec.ID.String(),
		Email:               rec.Email.Value(),
		EmailNormalized:     rec.Email.Normalized(),
		PasswordHash:        rec.PasswordHash,
		FailedLoginAttempts: rec.FailedLoginAttempts,
		LockedUntil:         rec.LockedUntil,
		LastLoginAt:         rec.LastLoginAt,
		LastLoginIP:         nullableString(rec.LastLoginIP),
		LastLoginUserAgent:  rec.LastLoginUserAgent,
		CreatedAt:           rec.CreatedAt,
		UpdatedAt:           rec.UpdatedAt,
		PasswordChangedAt:   rec.PasswordChangedAt,
	}
}

func toDomainSession(rec sessionModel) domain.Session {
	return domain.ReconstituteSession(domain.SessionRecord{
		ID:             domain.ReconstituteSessionID(rec.SessionID),
		UserID:         domain.ReconstituteUserID(rec.UserID),
		CSRFToken:      domain.ReconstituteCSRFToken(rec.CSRFToken),
		ExpiresAt:      rec.ExpiresAt,
		LastActivityAt: rec.LastActivityAt,
		IPAddress:      stringValue(rec.IPAddress),
		UserAgent:      rec.UserAgent,
		CreatedAt:      rec.CreatedAt,
	})
}

func toSessionModel(session domain.Session) sessionModel {
	rec := session.Record()
	return sessionModel{
		SessionID:      rec.ID.String(),
		UserID:         rec.UserID.String(),
		CSRFToken:      rec.CSRFToken.String(),
		IPAddress:      nullableString(rec.IPAddress),
		UserAgent:      rec.UserAgent,
		CreatedAt:      rec.CreatedAt,
		LastActivityAt: rec.LastActivityAt,
		ExpiresAt:      rec.ExpiresAt,
	}
}

func toDomainAttempt(rec loginAttemptModel) domain.LoginAttempt {
	var userID *domain.UserID
	if rec.UserID != nil {
		id := domain.ReconstituteUserID(*rec.UserID)
		userID = &id
	}
	return domain.LoginAttempt{
		ID:            rec.ID,
		UserID:        userID,
		AttemptAt:     rec.AttemptAt,
		IPAddress:     stringValue(rec.IPAddress),
		UserAgent:     rec.UserAgent,
		Status:        rec.Status,
		FailureReason: rec.FailureReason,
	}
}

func toAttemptModel(attempt domain.LoginAttempt) loginAttemptModel {
	var userID *string
	if attempt.UserID != nil {
		id := attempt.UserID.String()
		userID = &id
	}
	return loginAttemptModel{
		UserID:        userID,
		AttemptAt:     attempt.AttemptAt,
		IPAddress:     nullableString(attempt.IPAddress),
		UserAgent:     attempt.UserAgent,
		Status:        attempt.Status,
		FailureReason: attempt.FailureReason,
	}
}

func nullableString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
