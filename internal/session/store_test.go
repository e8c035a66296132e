// internal/session/store_test.go
package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"egs-enquiry/internal/common/config"
	"egs-enquiry/internal/common/database"
)

const testStorageKey = "egs:auth:token"

// ==========================
// Test Helper Functions
// ==========================

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client, testStorageKey), mr
}

// ==========================
// Redis Store
// ==========================

func TestRedisStore_MissingToken(t *testing.T) {
	store, _ := newRedisStore(t)

	_, err := store.Token(context.Background())

	assert.ErrorIs(t, err, ErrNoToken)
}

func TestRedisStore_SetAndGet(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "jwt-abc"))

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)

	// Stored under the configured storage key.
	val, err := mr.Get(testStorageKey)
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", val)
}

func TestRedisStore_Clear(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "jwt-abc"))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Token(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestRedisStore_EmptyValueTreatedAsMissing(t *testing.T) {
	store, mr := newRedisStore(t)

	require.NoError(t, mr.Set(testStorageKey, ""))

	_, err := store.Token(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
}

// ==========================
// Memory Store
// ==========================

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Token(ctx)
	assert.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.Set(ctx, "jwt-abc"))
	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Token(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
}
