package application

import (
	"context"
	"fmt"

	"github.com/taskdeck/auth-service/internal/domain"
)

// LoginHistory returns recent login attempts for the user, newest first.
func (s *Service) LoginHistory(ctx context.Context, userID domain.UserID, page, limit int) ([]LoginHistoryItem, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	attempts, err := s.loginAttempts.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list login attempts: %w", err)
	}

	result := make([]LoginHistoryItem, 0, len(attempts))
	for _, attempt := range attempts {
		result = append(result, LoginHistoryItem{
			ID:            attempt.ID,
			Timestamp:     attempt.AttemptAt,
			Status:        attempt.Status,
			FailureReason: attempt.FailureReason,
			IPAddress:     attempt.IPAddress,
			UserAgent:     attempt.UserAgent,
		})
	}
	return result, nil
}
