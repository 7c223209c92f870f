package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/airport-service/internal/repository/cache"
)

func newTestCache(t *testing.T) (*redis.Client, *cache.Redis) {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	return client, cache.NewRedisFromClient(client, zap.NewNop())
}

func TestCacheRepository_GetSetDelete(t *testing.T) {
	client, r := newTestCache(t)
	defer client.Close()

	repo := cache.NewCacheRepository(r)
	ctx := context.Background()
	key := "test:cache:airports"
	defer client.Del(ctx, key)

	val, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, val, "miss returns nil without error")

	require.NoError(t, repo.Set(ctx, key, []byte(`[{"id":1}]`), time.Minute))

	val, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(val))

	require.NoError(t, repo.Delete(ctx, key))
	val, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCacheRepository_Version(t *testing.T) {
	client, r := newTestCache(t)
	defer client.Close()

	repo := cache.NewCacheRepository(r)
	ctx := context.Background()
	ns := "test-routes"
	defer client.Del(ctx, "cache:version:"+ns)
	client.Del(ctx, "cache:version:"+ns)

	v, err := repo.Version(ctx, ns)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	require.NoError(t, repo.BumpVersion(ctx, ns))
	require.NoError(t, repo.BumpVersion(ctx, ns))

	v, err = repo.Version(ctx, ns)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)
}

func TestNoopCache(t *testing.T) {
	repo := cache.NewNoopCache()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Minute))
	val, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, val)

	require.NoError(t, repo.BumpVersion(ctx, "ns"))
	v, err := repo.Version(ctx, "ns")
	require.NoError(t, err)
	assert.Zero(t, v)
}
