package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"shop/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	id := uuid.MustParse("0190f3a4-7b1c-7c3e-9a2b-1234567890ab")

	assert.Equal(t, "idemp:order:abc", lockKey("order", "abc"))
	assert.Equal(t, "idemp:map:order:abc", resultKey("order", "abc"))
	assert.Equal(t, "order:status:0190f3a4-7b1c-7c3e-9a2b-1234567890ab", statusKey(id))
}

func TestConnect(t *testing.T) {
	client, err := Connect("redis://:secret@localhost:6380/2", "", 0)
	require.NoError(t, err)
	assert.Equal(t, "localhost:6380", client.Options().Addr)
	assert.Equal(t, 2, client.Options().DB)
	assert.Equal(t, "secret", client.Options().Password)

	client, err = Connect("localhost:6379", "pw", 1)
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", client.Options().Addr)
	assert.Equal(t, 1, client.Options().DB)

	_, err = Connect("redis://[::1", "", 0)
	assert.Error(t, err)
}

func TestNoopStoresWithoutClient(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}

	store := NewIdempotencyStore(nil, cfg)
	ok, err := store.TryLock(ctx, "order", "k")
	require.NoError(t, err)
	assert.True(t, ok)
	_, found, err := store.Recall(ctx, "order", "k")
	require.NoError(t, err)
	assert.False(t, found)

	cache := NewOrderStatusCache(nil, cfg)
	require.NoError(t, cache.SetStatus(ctx, uuid.New(), "ORDERED"))
	_, found, err = cache.GetStatus(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, found)
}

// TestRedisStores runs against a live Redis when SHOP_TEST_REDIS_URL is set.
func TestRedisStores(t *testing.T) {
	url := os.Getenv("SHOP_TEST_REDIS_URL")
	if url == "" {
		t.Skip("SHOP_TEST_REDIS_URL not set")
	}

	client, err := Connect(url, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	store := NewRedisIdempotencyStore(client, time.Minute)
	key := uuid.NewString()

	ok, err := store.TryLock(ctx, "order", key)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.TryLock(ctx, "order", key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Remember(ctx, "order", key, "result"))
	val, found, err := store.Recall(ctx, "order", key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "result", val)

	require.NoError(t, store.Release(ctx, "order", key))
	ok, err = store.TryLock(ctx, "order", key)
	require.NoError(t, err)
	assert.True(t, ok)

	cache := NewRedisStatusCache(client, time.Minute)
	orderID := uuid.New()
	require.NoError(t, cache.SetStatus(ctx, orderID, "CANCELLED"))
	status, found, err := cache.GetStatus(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "CANCELLED", status)
}
