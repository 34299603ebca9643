package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotodo/internal/server/adapters/cache"
	svc "gotodo/internal/server/ports/services"
)

func newTestCache(t *testing.T) (svc.Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCacheWithClient(client, time.Minute), mr
}

func TestRedisCacheSetGet(t *testing.T) {
	ctx := context.Background()
	redisCache, _ := newTestCache(t)

	require.NoError(t, redisCache.Set(ctx, "key", "value", time.Minute))

	value, err := redisCache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestRedisCacheGetMissingKey(t *testing.T) {
	ctx := context.Background()
	redisCache, _ := newTestCache(t)

	// Отсутствие ключа не является ошибкой.
	value, err := redisCache.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestRedisCacheSetDefaultTTL(t *testing.T) {
	ctx := context.Background()
	redisCache, mr := newTestCache(t)

	require.NoError(t, redisCache.Set(ctx, "key", "value", 0))

	assert.Equal(t, time.Minute, mr.TTL("key"))
}

func TestRedisCacheExpiration(t *testing.T) {
	ctx := context.Background()
	redisCache, mr := newTestCache(t)

	require.NoError(t, redisCache.Set(ctx, "key", "value", time.Second))

	mr.FastForward(2 * time.Second)

	value, err := redisCache.Get(ctx, "key")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestRedisCacheDelete(t *testing.T) {
	ctx := context.Background()
	redisCache, mr := newTestCache(t)

	require.NoError(t, redisCache.Set(ctx, "key", "value", time.Minute))
	require.NoError(t, redisCache.Delete(ctx, "key"))

	assert.False(t, mr.Exists("key"))
}

func TestRedisCacheConnectionFailure(t *testing.T) {
	ctx := context.Background()
	redisCache, mr := newTestCache(t)
	mr.Close()

	_, err := redisCache.Get(ctx, "key")
	assert.Error(t, err)

	assert.Error(t, redisCache.Set(ctx, "key", "value", time.Minute))
	assert.Error(t, redisCache.Delete(ctx, "key"))
}
