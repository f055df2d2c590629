package domain

import (
	"testing"
	"time"
)

func testUser(t *testing.T) User {
	t.Helper()
	email, err := NewEmail("user@example.com")
	if err != nil {
		t.Fatalf("email: %v", err)
	}
	return NewUser(NewUserID(), email, "$2a$12$opaquehash", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
}

func TestNewUserZeroesCounters(t *testing.T) {
	t.Parallel()

	user := testUser(t)
	if user.FailedLoginAttempts() != 0 {
		t.Fatalf("fresh user has %d failed attempts", user.FailedLoginAttempts())
	}
	if user.LockedUntil() != nil {
		t.Fatalf("fresh user is locked")
	}
	if user.LastLoginAt() != nil {
		t.Fatalf("fresh user has login metadata")
	}
}

func TestRecordFailedLoginBelowThreshold(t *testing.T) {
	t.Parallel()

	user := testUser(t)
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		user = user.RecordFailedLogin(now)
	}

	next := user.RecordFailedLogin(now)
	if next.FailedLoginAttempts() != 4 {
		t.Fatalf("attempts = %d, want 4", next.FailedLoginAttempts())
	}
	if next.LockedUntil() != nil {
		t.Fatalf("lock set below threshold")
	}
}

func TestRecordFailedLoginTriggersLockAtThreshold(t *testing.T) {
	t.Parallel()

	user := testUser(t)
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		user = user.RecordFailedLogin(now)
	}

	locked := user.RecordFailedLogin(now)
	if locked.FailedLoginAttempts() != 5 {
		t.Fatalf("attempts = %d, want 5", locked.FailedLoginAttempts())
	}
	if locked.LockedUntil() == nil {
		t.Fatalf("lock not set at threshold")
	}
	if want := now.Add(LockDuration); !locked.LockedUntil().Equal(want) {
		t.Fatalf("lockedUntil = %v, want %v", locked.LockedUntil(), want)
	}
}

func TestFailureDuringLockoutNeverShortensLock(t *testing.T) {
	t.Parallel()

	user := testUser(t)
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		user = user.RecordFailedLogin(start)
	}
	firstDeadline := *user.LockedUntil()

	later := start.Add(2 * time.Minute)
	again := user.RecordFailedLogin(later)
	if again.LockedUntil().Before(firstDeadline) {
		t.Fatalf("lock shortened: %v -> %v", firstDeadline, again.LockedUntil())
	}
}

func TestIsLockedBoundaryIsStrict(t *testing.T) {
	t.Parallel()

	user := testUser(t)
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		user = user.RecordFailedLogin(now)
	}
	deadline := *user.LockedUntil()

	if !user.IsLocked(deadline.Add(-time.Millisecond)) {
		t.Fatalf("expected locked just before deadline")
	}
	if user.IsLocked(deadline) {
		t.Fatalf("lock must expire exactly at the deadline")
	}
	if user.IsLocked(deadline.Add(time.Millisecond)) {
		t.Fatalf("expected unlocked after deadline")
	}
}

func TestRecordSuccessfulLoginClearsLockout(t *testing.T) {
	t.Parallel()

	user := testUser(t)
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		user = user.RecordFailedLogin(now)
	}

	loggedIn := user.RecordSuccessfulLogin(now.Add(20*time.Minute), "203.0.113.9", "unit-test-agent")
	if loggedIn.FailedLoginAttempts() != 0 {
		t.Fatalf("attempts not reset: %d", loggedIn.FailedLoginAttempts())
	}
	if loggedIn.LockedUntil() != nil {
		t.Fatalf("lock not cleared")
	}
	if loggedIn.LastLoginAt() == nil || loggedIn.LastLoginIP() != "203.0.113.9" || loggedIn.LastLoginUserAgent() != "unit-test-agent" {
		t.Fatalf("login metadata not recorded")
	}
}

func TestUpdatePasswordLeavesLockoutAlone(t *testing.T) {
	t.Parallel()

	user := testUser(t)
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	user = user.RecordFailedLogin(now).RecordFailedLogin(now)

	changed := user.UpdatePassword("$2a$12$newhash", now.Add(time.Hour))
	if changed.PasswordHash() != "$2a$12$newhash" {
		t.Fatalf("hash not replaced")
	}
	if changed.FailedLoginAttempts() != 2 {
		t.Fatalf("password change must not touch the failure counter")
	}
	if !changed.PasswordChangedAt().Equal(now.Add(time.Hour)) {
		t.Fatalf("passwordChangedAt = %v", changed.PasswordChangedAt())
	}
	if changed.CreatedAt() != user.CreatedAt() || !changed.ID().Equals(user.ID()) {
		t.Fatalf("identity or creation time changed")
	}
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	t.Parallel()

	user := testUser(t)
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	_ = user.RecordFailedLogin(now)

	if user.FailedLoginAttempts() != 0 {
		t.Fatalf("RecordFailedLogin mutated its receiver")
	}
}

func TestUserReconstituteRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	original := testUser(t).
		RecordFailedLogin(now).
		RecordSuccessfulLogin(now.Add(time.Minute), "198.51.100.7", "agent").
		UpdatePassword("$2a$12$rotated", now.Add(time.Hour))

	restored := ReconstituteUser(original.Record())
	if restored.Record() != original.Record() {
		t.Fatalf("round-trip changed observable attributes:\n%+v\n%+v", restored.Record(), original.Record())
	}
}
