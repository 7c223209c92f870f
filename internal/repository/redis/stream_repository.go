package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/airport-service/internal/domain/repository"
)

// DefaultStreamMaxLen - приблизительный предел длины стрима (XADD MAXLEN ~)
const DefaultStreamMaxLen = 10000

type streamRepository struct {
	client *redis.Client
	maxLen int64
	logger *zap.Logger
}

// NewStreamRepository создает новый экземпляр StreamRepository
func NewStreamRepository(client *redis.Client, logger *zap.Logger) repository.StreamRepository {
	return &streamRepository{
		client: client,
		maxLen: DefaultStreamMaxLen,
		logger: logger,
	}
}

// PublishToStream публикует JSON сообщения в поле "data" стрима
func (r *streamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) (string, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error("Failed to marshal data",
			zap.String("stream", stream),
			zap.Error(err))
		return "", fmt.Errorf("failed to marshal data: %w", err)
	}

	id, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: r.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"data": string(jsonData),
		},
	}).Result()
	if err != nil {
		r.logger.Error("Failed to publish to stream",
			zap.String("stream", stream),
			zap.Error(err))
		return "", fmt.Errorf("failed to publish to stream: %w", err)
	}

	r.logger.Debug("Message published to stream",
		zap.String("stream", stream),
		zap.String("message_id", id))
	return id, nil
}
