package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionExpired(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	s := Session{ExpiresAt: now.Add(time.Minute)}

	require.False(t, s.Expired(now))
	require.False(t, s.Expired(now.Add(time.Minute-time.Nanosecond)))

	// The deadline itself is already expired.
	require.True(t, s.Expired(now.Add(time.Minute)))
	require.True(t, s.Expired(now.Add(2*time.Minute)))
}
