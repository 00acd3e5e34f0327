package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLockStore(t *testing.T) (*LockStore, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewLockStore(client), s
}

func TestLockStore_Acquire(t *testing.T) {
	store, s := newTestLockStore(t)
	ctx := context.Background()

	token, ok, err := store.Acquire(ctx, "settle:fiat:A1", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, token)

	got, err := s.Get("lock:settle:fiat:A1")
	require.NoError(t, err)
	assert.Equal(t, token, got)
	assert.Equal(t, 30*time.Second, s.TTL("lock:settle:fiat:A1"))
}

func TestLockStore_Acquire_Held(t *testing.T) {
	store, _ := newTestLockStore(t)
	ctx := context.Background()

	_, ok, err := store.Acquire(ctx, "settle:chain:h", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	token, ok, err := store.Acquire(ctx, "settle:chain:h", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second holder must be refused")
	assert.Empty(t, token)
}

func TestLockStore_Acquire_AfterExpiry(t *testing.T) {
	store, s := newTestLockStore(t)
	ctx := context.Background()

	_, ok, err := store.Acquire(ctx, "settle:cart:c", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	s.FastForward(2 * time.Second)

	_, ok, err = store.Acquire(ctx, "settle:cart:c", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLockStore_Release(t *testing.T) {
	store, s := newTestLockStore(t)
	ctx := context.Background()

	token, ok, err := store.Acquire(ctx, "settle:fiat:A2", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.Release(ctx, "settle:fiat:A2", token))
	assert.False(t, s.Exists("lock:settle:fiat:A2"))

	_, ok, err = store.Acquire(ctx, "settle:fiat:A2", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLockStore_Release_ForeignToken(t *testing.T) {
	store, s := newTestLockStore(t)
	ctx := context.Background()

	_, ok, err := store.Acquire(ctx, "settle:fiat:A3", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.Release(ctx, "settle:fiat:A3", "someone-else"))
	assert.True(t, s.Exists("lock:settle:fiat:A3"), "lock owned by another token must survive")
}

func TestLockStore_RedisDown(t *testing.T) {
	store, s := newTestLockStore(t)
	s.Close()

	_, ok, err := store.Acquire(context.Background(), "settle:fiat:A4", time.Minute)
	assert.Error(t, err)
	assert.False(t, ok)
}
