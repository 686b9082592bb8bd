package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_ConsumeIsSingleUse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewSessionStore()

	require.NoError(t, s.Save(ctx, "u1", "t1", time.Hour))

	ok, err := s.Consume(ctx, "u1", "t1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Consume(ctx, "u1", "t1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStore_Expiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewSessionStore()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return now })
	require.NoError(t, s.Save(ctx, "u1", "t1", time.Minute))
	require.NoError(t, s.Save(ctx, "u1", "t2", time.Hour))

	now = now.Add(2 * time.Minute)
	ok, err := s.Consume(ctx, "u1", "t1")
	require.NoError(t, err)
	assert.False(t, ok, "expired token is not live")

	removed, err := s.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, removed, "t1 was already consumed")
	assert.Equal(t, 1, s.Count("u1"))

	now = now.Add(2 * time.Hour)
	removed, err = s.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, s.Count("u1"))
}

func TestSessionStore_RevokeUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewSessionStore()

	require.NoError(t, s.Save(ctx, "u1", "t1", time.Hour))
	require.NoError(t, s.Save(ctx, "u1", "t2", time.Hour))
	require.NoError(t, s.Save(ctx, "u2", "t3", time.Hour))

	require.NoError(t, s.RevokeUser(ctx, "u1"))
	assert.Equal(t, 0, s.Count("u1"))
	assert.Equal(t, 1, s.Count("u2"))
}
