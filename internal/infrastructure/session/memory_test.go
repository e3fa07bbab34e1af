package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/busybee/admin-gateway/internal/core/domain"
)

func TestMemoryStore_SetGetClear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", "T123", time.Hour))

	token, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "T123", token)

	require.NoError(t, store.Clear(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestMemoryStore_UnknownSession(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Clearing an unknown session is a no-op.
	assert.NoError(t, store.Clear(context.Background(), "ghost"))
}

func TestMemoryStore_ExpiredSessionIsGone(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", "T123", time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestMemoryStore_ZeroTTLNeverExpires(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", "T123", 0))

	token, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "T123", token)
}

func TestTokenContext_RoundTrip(t *testing.T) {
	ctx := WithToken(context.Background(), "T123")

	token, ok := TokenFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "T123", token)

	_, ok = TokenFrom(context.Background())
	assert.False(t, ok)
}
