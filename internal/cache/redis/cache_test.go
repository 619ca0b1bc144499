package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tg-info-backend/internal/features/profile/models"
	rplatform "tg-info-backend/internal/platform/redis"
)

// openTestRedis connects to REDIS_TEST_ADDR or skips the test.
func openTestRedis(t *testing.T) *rplatform.Client {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client, err := rplatform.Open(context.Background(), addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestResolveCache(t *testing.T) {
	client := openTestRedis(t)
	ctx := context.Background()
	cache := NewResolveCache(client, time.Minute)

	handle := fmt.Sprintf("Test_%d", time.Now().UnixNano())
	t.Cleanup(func() { _ = cache.Invalidate(ctx, handle) })

	got, err := cache.Get(ctx, handle)
	require.NoError(t, err)
	assert.Nil(t, got)

	entity := &models.RawEntity{
		ID:         models.Ptr[int64](-1001),
		Title:      models.Ptr("News"),
		Broadcast:  models.Ptr(true),
		Photo:      &models.RawPhoto{ID: 5, DCID: 2},
		PeerKind:   models.PeerChannel,
		AccessHash: 99,
	}
	require.NoError(t, cache.Set(ctx, handle, entity))

	got, err = cache.Get(ctx, handle)
	require.NoError(t, err)
	assert.Equal(t, entity, got)

	// keys are case-insensitive
	got, err = cache.Get(ctx, "test_"+handle[len("Test_"):])
	require.NoError(t, err)
	assert.Equal(t, entity, got)

	ttl, err := client.TTL(ctx, cache.key(handle)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, cache.Invalidate(ctx, handle))
	got, err = cache.Get(ctx, handle)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPhotoCache(t *testing.T) {
	client := openTestRedis(t)
	ctx := context.Background()
	cache := NewPhotoCache(client, time.Minute)

	id := time.Now().UnixNano()
	t.Cleanup(func() { _ = cache.Invalidate(ctx, id) })

	got, err := cache.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)

	entry := models.CachedPhoto{PhotoID: 42, Filename: "1_2.jpg"}
	require.NoError(t, cache.Set(ctx, id, entry))

	got, err = cache.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry, *got)
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "profile:resolve:durov", (&ResolveCache{}).key("Durov"))
	assert.Equal(t, "profile:photo:-1001", (&PhotoCache{}).key(-1001))
}
