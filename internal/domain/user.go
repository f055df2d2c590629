package domain

import "time"

// Brute-force lockout policy knobs.
const (
	MaxFailedAttempts = 5
	LockDuration      = 15 * time.Minute
)

// User is the registered-account aggregate: identity, credential hash, and
// brute-force lockout state. It performs no I/O and never hashes passwords
// itself; the hash string is opaque here. Every transition returns a new
// value, so a User can be shared across goroutines without locking.
type User struct {
	id                  UserID
	email               Email
	passwordHash        string
	failedLoginAttempts int
	lockedUntil         *time.Time
	lastLoginAt         *time.Time
	lastLoginIP         string
	lastLoginUserAgent  string
	createdAt           time.Time
	updatedAt           time.Time
	passwordChangedAt   time.Time
}

// NewUser creates a freshly registered account with all counters zeroed.
func NewUser(id UserID, email Email, passwordHash string, now time.Time) User {
	now = now.UTC()
	return User{
		id:                id,
		email:             email,
		passwordHash:      passwordHash,
		createdAt:         now,
		updatedAt:         now,
		passwordChangedAt: now,
	}
}

// UserRecord carries persisted attributes for reconstitution.
type UserRecord struct {
	ID                  UserID
	Email               Email
	PasswordHash        string
	FailedLoginAttempts int
	LockedUntil         *time.Time
	LastLoginAt         *time.Time
	LastLoginIP         string
	LastLoginUserAgent  string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	PasswordChangedAt   time.Time
}

// ReconstituteUser rebuilds a User from storage without re-validating format.
func ReconstituteUser(rec UserRecord) User {
	return User{
		id:                  rec.ID,
		email:               rec.Email,
		passwordHash:        rec.PasswordHash,
		failedLoginAttempts: rec.FailedLoginAttempts,
		lockedUntil:         rec.LockedUntil,
		lastLoginAt:         rec.LastLoginAt,
		lastLoginIP:         rec.LastLoginIP,
		lastLoginUserAgent:  rec.LastLoginUserAgent,
		createdAt:           rec.CreatedAt,
		updatedAt:           rec.UpdatedAt,
		passwordChangedAt:   rec.PasswordChangedAt,
	}
}

// Record returns the persistable attributes of the user.
func (u User) Record() UserRecord {
	return UserRecord{
		ID:                  u.id,
		Email:               u.email,
		PasswordHash:        u.passwordHash,
		FailedLoginAttempts: u.failedLoginAttempts,
		LockedUntil:         u.lockedUntil,
		LastLoginAt:         u.lastLoginAt,
		LastLoginIP:         u.lastLoginIP,
		LastLoginUserAgent:  u.lastLoginUserAgent,
		CreatedAt:           u.createdAt,
		UpdatedAt:           u.updatedAt,
		PasswordChangedAt:   u.passwordChangedAt,
	}
}

func (u User) ID() UserID              { return u.id }
func (u User) Email() Email            { return u.email }
func (u User) PasswordHash() string    { return u.passwordHash }
func (u User) FailedLoginAttempts() int { return u.failedLoginAttempts }
func (u User) LockedUntil() *time.Time { return u.lockedUntil }
func (u User) LastLoginAt() *time.Time { return u.lastLoginAt }
func (u User) LastLoginIP() string     { return u.lastLoginIP }
func (u User) LastLoginUserAgent() string { return u.lastLoginUserAgent }
func (u User) CreatedAt() time.Time    { return u.createdAt }
func (u User) UpdatedAt() time.Time    { return u.updatedAt }
func (u User) PasswordChangedAt() time.Time { return u.passwordChangedAt }

// RecordFailedLogin increments the failure counter. When the new count is at
// or past MaxFailedAttempts the lock deadline becomes now+LockDuration; a
// pre-existing lock can only move later, never shorter. Below the threshold
// the lock field is untouched.
func (u User) RecordFailedLogin(now time.Time) User {
	now = now.UTC()
	next := u
	next.failedLoginAttempts++
	if next.failedLoginAttempts >= MaxFailedAttempts {
		lockedUntil := now.Add(LockDuration)
		next.lockedUntil = &lockedUntil
	}
	next.updatedAt = now
	return next
}

// RecordSuccessfulLogin unconditionally clears the failure counter and any
// lock, and records login metadata. The caller is expected to have checked
// IsLocked before verifying credentials; a locked attempt must be rejected
// without ever reaching this method.
func (u User) RecordSuccessfulLogin(now time.Time, ip, userAgent string) User {
	now = now.UTC()
	next := u
	next.failedLoginAttempts = 0
	next.lockedUntil = nil
	loginAt := now
	next.lastLoginAt = &loginAt
	next.lastLoginIP = ip
	next.lastLoginUserAgent = userAgent
	next.updatedAt = now
	return next
}

// UpdatePassword replaces the credential hash. Lockout state is untouched.
func (u User) UpdatePassword(passwordHash string, now time.Time) User {
	now = now.UTC()
	next := u
	next.passwordHash = passwordHash
	next.passwordChangedAt = now
	next.updatedAt = now
	return next
}

// IsLocked reports whether a lock is set and still in the future. The
// comparison is strict, so the lock expires exactly at its deadline.
func (u User) IsLocked(now time.Time) bool {
	return u.lockedUntil != nil && now.Before(*u.lockedUntil)
}
