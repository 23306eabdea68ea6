package service

import (
	"context"
	"errors"
	"time"

	"github.com/ngboy11/school/internal/roster/domain"
	"github.com/ngboy11/school/internal/roster/store"
	"github.com/ngboy11/school/pkg/cryptox"
	"github.com/ngboy11/school/pkg/slogx"
)

// DefaultSessionTTL is the rolling session lifetime.
const DefaultSessionTTL = 24 * time.Hour

var ErrNoSession = errors.New("no active session")

// SessionService owns server-side session state. The caller holds only the
// opaque token; the store keeps its SHA-256 fingerprint together with a
// snapshot of the user's public identity.
type SessionService struct {
	Store store.Store
	TTL   time.Duration
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL <= 0 {
		return DefaultSessionTTL
	}
	return s.TTL
}

// Create establishes a session for the user and returns the opaque token to
// be carried by the cookie.
func (s *SessionService) Create(ctx context.Context, user domain.User) (string, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", err
	}

	session := domain.Session{
		TokenHash: cryptox.FingerprintToken(token),
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().UTC().Add(s.ttl()),
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the session for a token and pushes the rolling expiry
// forward. Concurrent requests with the same token may race on the refresh;
// that only shortens one deadline and is accepted.
func (s *SessionService) Resolve(ctx context.Context, token string) (domain.Session, error) {
	hash := cryptox.FingerprintToken(token)
	now := time.Now().UTC()

	session, err := s.Store.Sessions().GetSessionByTokenHash(ctx, hash, now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrNoSession
		}
		return domain.Session{}, err
	}
	// The lookup filters on expiry; check the returned row against the
	// same clock before extending its deadline.
	if session.Expired(now) {
		return domain.Session{}, ErrNoSession
	}

	if err := s.Store.Sessions().RefreshSession(ctx, hash, now.Add(s.ttl())); err != nil {
		slogx.FromContext(ctx).Warn("session refresh failed", "err", err)
	}
	return session, nil
}

// Destroy removes the session. Destroying an absent or already-destroyed
// session succeeds; logout is idempotent.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	return s.Store.Sessions().DeleteSession(ctx, cryptox.FingerprintToken(token))
}
