package repository

import (
	"context"
	"time"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Version возвращает текущую версию пространства ключей
	Version(ctx context.Context, namespace string) (int64, error)

	// BumpVersion инвалидирует все ключи пространства
	BumpVersion(ctx context.Context, namespace string) error
}
