package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRevocationStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRevocationStore()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", 30*time.Minute))
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	now = now.Add(31 * time.Minute)
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "entry must expire with the token")
	assert.Empty(t, store.entries)
}

func TestMemoryRevocationStore_NonPositiveTTL(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRevocationStore()

	require.NoError(t, store.Revoke(ctx, "expired", 0))
	revoked, err := store.IsRevoked(ctx, "expired")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryRevocationStore_RevokeSweepsExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryRevocationStore()
	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Revoke(ctx, "old", time.Minute))
	now = now.Add(2 * time.Minute)
	require.NoError(t, store.Revoke(ctx, "new", time.Minute))

	assert.Len(t, store.entries, 1)
	assert.Contains(t, store.entries, "new")
}
