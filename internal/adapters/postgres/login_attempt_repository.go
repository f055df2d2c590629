package postgres

import (
	"context"

	"github.com/taskdeck/auth-service/internal/domain"
	"gorm.io/gorm"
)

type loginAttemptRepository struct {
	db *gorm.DB
}

func (r *loginAttemptRepository) Insert(ctx context.Context, attempt domain.LoginAttempt) error {
	rec := toAttemptModel(attempt)
	return r.db.WithContext(ctx).Create(&rec).Error
}

func (r *loginAttemptRepository) ListByUser(ctx context.Context, userID domain.UserID, limit, offset int) ([]domain.LoginAttempt, error) {
	var recs []loginAttemptModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("attempt_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	attempts := make([]domain.LoginAttempt, 0, len(recs))
	for _, rec := range recs {
		attempts = append(attempts, toDomainAttempt(rec))
	}
	return attempts, nil
}
