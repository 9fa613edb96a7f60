package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := &Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestSetGetDelete(t *testing.T) {
	client, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "key", "value", time.Minute))

	got, err := client.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	require.NoError(t, client.Delete(ctx, "key"))

	_, err = client.Get(ctx, "key")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestSet_Expiration(t *testing.T) {
	client, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "key", "value", time.Second))

	mr.FastForward(2 * time.Second)

	_, err := client.Get(ctx, "key")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestAcquire(t *testing.T) {
	client, mr := setupTestCache(t)
	ctx := context.Background()

	ok, err := client.Acquire(ctx, "reply_sync:inbox@test.com", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "first caller wins")

	ok, err = client.Acquire(ctx, "reply_sync:inbox@test.com", 30*time.Second)
	require.NoError(t, err)
	assert.False(t, ok, "key already held")

	mr.FastForward(31 * time.Second)

	ok, err = client.Acquire(ctx, "reply_sync:inbox@test.com", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "available again after the ttl")
}
