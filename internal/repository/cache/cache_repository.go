package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/airport-service/internal/domain/repository"
)

const versionKeyPrefix = "cache:version:"

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

// Version - счётчик пространства ключей; отсутствующий счётчик = 0
func (r *cacheRepository) Version(ctx context.Context, namespace string) (int64, error) {
	v, err := r.client.Get(ctx, versionKeyPrefix+namespace).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		r.logger.Error("Failed to get cache version", zap.String("namespace", namespace), zap.Error(err))
		return 0, fmt.Errorf("cache version error: %w", err)
	}
	return v, nil
}

// BumpVersion увеличивает счётчик, старые ключи истекают по TTL
func (r *cacheRepository) BumpVersion(ctx context.Context, namespace string) error {
	v, err := r.client.Incr(ctx, versionKeyPrefix+namespace).Result()
	if err != nil {
		r.logger.Error("Failed to bump cache version", zap.String("namespace", namespace), zap.Error(err))
		return fmt.Errorf("cache bump version error: %w", err)
	}

	r.logger.Debug("Cache version bumped", zap.String("namespace", namespace), zap.Int64("version", v))
	return nil
}
