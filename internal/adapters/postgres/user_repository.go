package postgres

import (
	"context"
	"errors"

	"github.com/taskdeck/auth-service/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db *gorm.DB
}

func (r *userRepository) FindByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	var rec userModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", id.String()).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email domain.Email) (domain.User, error) {
	var rec userModel
	if err := r.db.WithContext(ctx).Where("email_normalized = ?", email.Normalized()).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return toDomainUser(rec), nil
}

func (r *userRepository) EmailExists(ctx context.Context, email domain.Email) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userModel{}).
		Where("email_normalized = ?", email.Normalized()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save upserts the full aggregate so entity transitions persist atomically.
func (r *userRepository) Save(ctx context.Context, user domain.User) error {
	rec := toUserModel(user)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&rec).Error
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}
