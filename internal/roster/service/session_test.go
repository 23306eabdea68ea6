package service

import (
	"context"
	"testing"
	"time"

	"github.com/ngboy11/school/internal/roster/domain"
	"github.com/ngboy11/school/internal/roster/store"
	"github.com/ngboy11/school/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

// seedUser inserts a user row directly; sessions carry a foreign key to users.
func seedUser(t *testing.T, st store.Store, id, name, email string, role domain.Role) domain.User {
	t.Helper()

	user := domain.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: "argon2:unused",
		Role:         role,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	return user
}

func TestSessionCreateAndResolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := &SessionService{Store: st}
	user := seedUser(t, st, "user-1", "Alice", "alice@example.com", domain.RoleTeacher)

	token, err := svc.Create(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	session, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "user-1", session.UserID)
	require.Equal(t, "Alice", session.Name)
	require.Equal(t, "alice@example.com", session.Email)
	require.Equal(t, domain.RoleTeacher, session.Role)
}

func TestSessionResolveUnknownToken(t *testing.T) {
	t.Parallel()

	svc := &SessionService{Store: newTestStore(t)}

	_, err := svc.Resolve(context.Background(), "not-a-real-token")
	require.ErrorIs(t, err, ErrNoSession)
}

func TestSessionRollingRefresh(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := &SessionService{Store: st, TTL: time.Hour}
	user := seedUser(t, st, "user-1", "Alice", "alice@example.com", domain.RoleTeacher)

	token, err := svc.Create(ctx, user)
	require.NoError(t, err)

	hash := cryptox.FingerprintToken(token)
	before, err := st.Sessions().GetSessionByTokenHash(ctx, hash, time.Now().UTC())
	require.NoError(t, err)

	// Resolving pushes the deadline forward.
	time.Sleep(10 * time.Millisecond)
	_, err = svc.Resolve(ctx, token)
	require.NoError(t, err)

	after, err := st.Sessions().GetSessionByTokenHash(ctx, hash, time.Now().UTC())
	require.NoError(t, err)
	require.True(t, after.ExpiresAt.After(before.ExpiresAt))
}

func TestSessionExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := &SessionService{Store: st, TTL: time.Hour}
	user := seedUser(t, st, "user-1", "Alice", "alice@example.com", domain.RoleTeacher)

	token, err := svc.Create(ctx, user)
	require.NoError(t, err)

	// Force the deadline into the past; the session must stop resolving.
	hash := cryptox.FingerprintToken(token)
	require.NoError(t, st.Sessions().RefreshSession(ctx, hash, time.Now().UTC().Add(-time.Minute)))

	_, err = svc.Resolve(ctx, token)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestSessionDestroy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := &SessionService{Store: st}
	user := seedUser(t, st, "user-1", "Alice", "alice@example.com", domain.RoleTeacher)

	token, err := svc.Create(ctx, user)
	require.NoError(t, err)

	require.NoError(t, svc.Destroy(ctx, token))

	_, err = svc.Resolve(ctx, token)
	require.ErrorIs(t, err, ErrNoSession)

	// Logout is idempotent.
	require.NoError(t, svc.Destroy(ctx, token))
}

func TestHousekeepingSweepsExpiredSessions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := &SessionService{Store: st, TTL: time.Hour}

	alice := seedUser(t, st, "user-1", "Alice", "alice@example.com", domain.RoleTeacher)
	bob := seedUser(t, st, "user-2", "Bob", "bob@example.com", domain.RoleStudent)

	live, err := svc.Create(ctx, alice)
	require.NoError(t, err)
	stale, err := svc.Create(ctx, bob)
	require.NoError(t, err)

	staleHash := cryptox.FingerprintToken(stale)
	require.NoError(t, st.Sessions().RefreshSession(ctx, staleHash, time.Now().UTC().Add(-time.Minute)))

	require.NoError(t, st.Sessions().DeleteExpiredSessions(ctx, time.Now().UTC()))

	_, err = svc.Resolve(ctx, live)
	require.NoError(t, err)
	_, err = svc.Resolve(ctx, stale)
	require.ErrorIs(t, err, ErrNoSession)
}
