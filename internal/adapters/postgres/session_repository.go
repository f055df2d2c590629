package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/taskdeck/auth-service/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sessionRepository struct {
	db *gorm.DB
}

func (r *sessionRepository) FindByID(ctx context.Context, id domain.SessionID) (domain.Session, error) {
	var rec sessionModel
	if err := r.db.WithContext(ctx).Where("session_id = ?", id.String()).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Session{}, domain.ErrNotFound
		}
		return domain.Session{}, err
	}
	return toDomainSession(rec), nil
}

func (r *sessionRepository) Save(ctx context.Context, session domain.Session) error {
	rec := toSessionModel(session)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		UpdateAll: true,
	}).Create(&rec).Error
}

func (r *sessionRepository) Delete(ctx context.Context, id domain.SessionID) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", id.String()).
		Delete(&sessionModel{}).Error
}

func (r *sessionRepository) DeleteAllForUser(ctx context.Context, userID domain.UserID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Delete(&sessionModel{}).Error
}

// UpdateActivity touches last_activity_at only; expiry is immutable after creation.
func (r *sessionRepository) UpdateActivity(ctx context.Context, id domain.SessionID, lastActivityAt time.Time) error {
	return r.db.WithContext(ctx).Model(&sessionModel{}).
		Where("session_id = ?", id.String()).
		Update("last_activity_at", lastActivityAt).Error
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&sessionModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
