package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/airport-service/internal/pkg/utils"
	"github.com/airport-service/internal/usecase/dto"
)

// HealthChecker - зависимость с проверкой доступности (postgres.DB, cache.Redis)
type HealthChecker interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	db     HealthChecker
	redis  HealthChecker
	logger *zap.Logger
}

// NewHealthHandler - redis может быть nil, если кеш и события выключены
func NewHealthHandler(db, redis HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		redis:  redis,
		logger: logger,
	}
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.HealthResponse}
// @Failure 503 {object} utils.SuccessResponse{data=dto.HealthResponse}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "healthy", Database: "up"}
	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("Database health check failed", zap.Error(err))
		resp.Status = "unhealthy"
		resp.Database = "down"
	}
	if h.redis != nil {
		resp.Redis = "up"
		if err := h.redis.Health(ctx); err != nil {
			// Redis только ускоряет списки и публикует события
			h.logger.Warn("Redis health check failed", zap.Error(err))
			resp.Status = "degraded"
			resp.Redis = "down"
		}
		if resp.Database == "down" {
			resp.Status = "unhealthy"
		}
	}

	if resp.Status == "unhealthy" {
		c.Status(fiber.StatusServiceUnavailable)
	}
	return utils.SendSuccess(c, resp, nil)
}
