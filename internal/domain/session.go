package domain

import "time"

// Session lifetime policy knobs.
const (
	// SessionDuration caps the absolute session lifetime. It is fixed at
	// creation and never extended by activity.
	SessionDuration = 24 * time.Hour
	// RefreshThreshold is how stale lastActivityAt may get before callers
	// should persist a fresh activity timestamp.
	RefreshThreshold = 5 * time.Minute
)

// Session is one authenticated browser session: its identity, owning user,
// CSRF token, expiry, and activity tracking. Like User it is immutable and
// performs no I/O.
type Session struct {
	id             SessionID
	userID         UserID
	csrfToken      CSRFToken
	expiresAt      time.Time
	lastActivityAt time.Time
	ipAddress      string
	userAgent      string
	createdAt      time.Time
}

// NewSession starts a session for a user at login, generating the session
// identifier and CSRF token. expiresAt is createdAt+SessionDuration.
func NewSession(userID UserID, ipAddress, userAgent string, now time.Time) (Session, error) {
	csrfToken, err := NewCSRFToken()
	if err != nil {
		return Session{}, err
	}
	now = now.UTC()
	return Session{
		id:             NewSessionID(),
		userID:         userID,
		csrfToken:      csrfToken,
		expiresAt:      now.Add(SessionDuration),
		lastActivityAt: now,
		ipAddress:      ipAddress,
		userAgent:      userAgent,
		createdAt:      now,
	}, nil
}

// SessionRecord carries persisted attributes for reconstitution.
type SessionRecord struct {
	ID             SessionID
	UserID         UserID
	CSRFToken      CSRFToken
	ExpiresAt      time.Time
	LastActivityAt time.Time
	IPAddress      string
	UserAgent      string
	CreatedAt      time.Time
}

// ReconstituteSession rebuilds a Session from storage without re-validating.
func ReconstituteSession(rec SessionRecord) Session {
	return Session{
		id:             rec.ID,
		userID:         rec.UserID,
		csrfToken:      rec.CSRFToken,
		expiresAt:      rec.ExpiresAt,
		lastActivityAt: rec.LastActivityAt,
		ipAddress:      rec.IPAddress,
		userAgent:      rec.UserAgent,
		createdAt:      rec.CreatedAt,
	}
}

// Record returns the persistable attributes of the session.
func (s Session) Record() SessionRecord {
	return SessionRecord{
		ID:             s.id,
		UserID:         s.userID,
		CSRFToken:      s.csrfToken,
		ExpiresAt:      s.expiresAt,
		LastActivityAt: s.lastActivityAt,
		IPAddress:      s.ipAddress,
		UserAgent:      s.userAgent,
		CreatedAt:      s.createdAt,
	}
}

func (s Session) ID() SessionID             { return s.id }
func (s Session) UserID() UserID            { return s.userID }
func (s Session) CSRFToken() CSRFToken      { return s.csrfToken }
func (s Session) ExpiresAt() time.Time      { return s.expiresAt }
func (s Session) LastActivityAt() time.Time { return s.lastActivityAt }
func (s Session) IPAddress() string         { return s.ipAddress }
func (s Session) UserAgent() string         { return s.userAgent }
func (s Session) CreatedAt() time.Time      { return s.createdAt }

// IsExpired reports whether the session has reached its absolute deadline.
// The boundary is inclusive: a session is expired at exactly expiresAt.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}

// NeedsRefresh reports whether the persisted activity marker is stale enough
// to rewrite. Equality counts as needing refresh.
func (s Session) NeedsRefresh(elapsedSinceLastActivity time.Duration) bool {
	return elapsedSinceLastActivity >= RefreshThreshold
}

// WithUpdatedActivity returns a copy with a fresh lastActivityAt. expiresAt
// is deliberately untouched: only the "last seen" marker moves, the absolute
// lifetime set at creation stands.
func (s Session) WithUpdatedActivity(now time.Time) Session {
	next := s
	next.lastActivityAt = now.UTC()
	return next
}

// ValidateCSRFToken compares a submitted raw token against the session's
// token in constant time.
func (s Session) ValidateCSRFToken(candidate string) bool {
	return s.csrfToken.MatchesRaw(candidate)
}
