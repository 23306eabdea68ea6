package domain

import "time"

// Session is the server-held record of an authenticated identity, referenced
// by the token carried in the session cookie. Only the token's SHA-256
// fingerprint is stored. The user fields are a snapshot taken at login; the
// users table remains canonical.
type Session struct {
	TokenHash string
	UserID    string
	Name      string
	Email     string
	Role      Role
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
