package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/airport-service/internal/domain"
	"github.com/airport-service/internal/domain/repository"
)

// Пространства ключей кеша списков
const (
	nsAirports      = "airports"
	nsAirplaneTypes = "airplane_types"
	nsAirplanes     = "airplanes"
	nsCrews         = "crews"
	nsRoutes        = "routes"
	nsFlights       = "flights"
)

// ListCache - кеш страниц справочников с версионированием по пространству.
// Ошибки кеша логируются и не влияют на ответ.
type ListCache struct {
	repo   repository.CacheRepository
	ttl    time.Duration
	logger *zap.Logger
}

func NewListCache(repo repository.CacheRepository, ttl time.Duration, logger *zap.Logger) *ListCache {
	return &ListCache{repo: repo, ttl: ttl, logger: logger}
}

type cachedPage[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// Invalidate делает устаревшими все страницы пространства
func (c *ListCache) Invalidate(ctx context.Context, namespace string) {
	if err := c.repo.BumpVersion(ctx, namespace); err != nil {
		c.logger.Warn("Failed to invalidate list cache", zap.String("namespace", namespace), zap.Error(err))
	}
}

func (c *ListCache) key(ctx context.Context, namespace string, page domain.Page) (string, bool) {
	version, err := c.repo.Version(ctx, namespace)
	if err != nil {
		c.logger.Warn("Failed to read list cache version", zap.String("namespace", namespace), zap.Error(err))
		return "", false
	}
	return fmt.Sprintf("list:%s:v%d:%d:%d", namespace, version, page.Limit, page.Offset), true
}

// cachedList возвращает страницу из кеша или загружает её через load и кладёт в кеш
func cachedList[T any](
	ctx context.Context,
	c *ListCache,
	namespace string,
	page domain.Page,
	load func(ctx context.Context, page domain.Page) ([]T, int, error),
) ([]T, int, error) {
	key, ok := c.key(ctx, namespace, page)
	if ok {
		data, err := c.repo.Get(ctx, key)
		if err != nil {
			c.logger.Warn("Failed to read list cache", zap.String("key", key), zap.Error(err))
		} else if data != nil {
			var cached cachedPage[T]
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached.Items, cached.Total, nil
			}
			c.logger.Warn("Failed to decode cached list", zap.String("key", key))
		}
	}

	items, total, err := load(ctx, page)
	if err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []T{}
	}

	if ok {
		data, err := json.Marshal(cachedPage[T]{Items: items, Total: total})
		if err == nil {
			err = c.repo.Set(ctx, key, data, c.ttl)
		}
		if err != nil {
			c.logger.Warn("Failed to write list cache", zap.String("key", key), zap.Error(err))
		}
	}

	return items, total, nil
}
