package repository

import (
	"context"
)

// StreamRepository - интерфейс для работы с Redis Streams
type StreamRepository interface {
	// PublishToStream публикует сообщение в стрим, возвращает ID сообщения
	PublishToStream(ctx context.Context, stream string, data interface{}) (string, error)
}
