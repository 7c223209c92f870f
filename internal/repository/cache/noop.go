package cache

import (
	"context"
	"time"

	"github.com/airport-service/internal/domain/repository"
)

// noopCache используется при CACHE_ENABLED=false: всегда промах
type noopCache struct{}

func NewNoopCache() repository.CacheRepository {
	return noopCache{}
}

func (noopCache) Get(context.Context, string) ([]byte, error) { return nil, nil }
func (noopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (noopCache) Delete(context.Context, string) error { return nil }
func (noopCache) Version(context.Context, string) (int64, error) { return 0, nil }
func (noopCache) BumpVersion(context.Context, string) error { return nil }
