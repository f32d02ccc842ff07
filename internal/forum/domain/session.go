package domain

import "time"

// Session binds an opaque bearer token to a user. It is created at sign-in,
// mutated once when the user signs out and never deleted.
type Session struct {
	ID        int64
	Token     string
	UserID    int64
	User      User // owner, loaded alongside the session
	IssuedAt  time.Time
	ExpiresAt time.Time
	LogoutAt  *time.Time // nil while the session is active
}

// SignedOut reports whether the session has been logged out.
func (s Session) SignedOut() bool { return s.LogoutAt != nil }

// Expired reports whether now is past the session's expiry instant.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
