package postgres

import (
	"time"
)

type userModel struct {
	UserID              string     `gorm:"column:user_id;type:uuid;primaryKey"`
	Email               string     `gorm:"column:email"`
	EmailNormalized     string     `gorm:"column:email_normalized"`
	PasswordHash        string     `gorm:"column:password_hash"`
	FailedLoginAttempts int        `gorm:"column:failed_login_attempts"`
	LockedUntil         *time.Time `gorm:"column:locked_until"`
	LastLoginAt         *time.Time `gorm:"column:last_login_at"`
	LastLoginIP         *string    `gorm:"column:last_login_ip"`
	LastLoginUserAgent  string     `gorm:"column:last_login_user_agent"`
	CreatedAt           time.Time  `gorm:"column:created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at"`
	PasswordChangedAt   time.Time  `gorm:"column:password_changed_at"`
}

func (userModel) TableName() string { return "users" }

type sessionModel struct {
	SessionID      string    `gorm:"column:session_id;type:uuid;primaryKey"`
	UserID         string    `gorm:"column:user_id"`
	CSRFToken      string    `gorm:"column:csrf_token"`
	IPAddress      *string   `gorm:"column:ip_address"`
	UserAgent      string    `gorm:"column:user_agent"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	LastActivityAt time.Time `gorm:"column:last_activity_at"`
	ExpiresAt      time.Time `gorm:"column:expires_at"`
}

func (sessionModel) TableName() string { return "sessions" }

type loginAttemptModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	UserID        *string   `gorm:"column:user_id"`
	AttemptAt     time.Time `gorm:"column:attempt_at"`
	IPAddress     *string   `gorm:"column:ip_address"`
	UserAgent     string    `gorm:"column:user_agent"`
	Status        string    `gorm:"column:status"`
	FailureReason string    `gorm:"column:failure_reason"`
}

func (loginAttemptModel) TableName() string { return "login_attempts" }
