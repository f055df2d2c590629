package domain

import "time"

// Login attempt outcomes as stored in the audit trail.
const (
	AttemptStatusSuccess = "SUCCESS"
	AttemptStatusFailed  = "FAILED"
	AttemptStatusBlocked = "BLOCKED"
)

// LoginAttempt records one authentication outcome for audit and security
// review. The user reference is optional because failures for unknown
// addresses are recorded too.
type LoginAttempt struct {
	ID            int64
	UserID        *UserID
	AttemptAt     time.Time
	IPAddress     string
	UserAgent     string
	Status        string
	FailureReason string
}
