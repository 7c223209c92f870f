package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/airport-service/internal/domain"
	"github.com/airport-service/internal/domain/repository"
	"github.com/airport-service/internal/pkg/errors"
	"github.com/airport-service/internal/usecase/dto"
)

type RouteUseCase struct {
	tx     repository.TxManager
	store  repository.Store
	cache  *ListCache
	rule   string
	logger *zap.Logger
}

// NewRouteUseCase - rule: config.RouteRuleDestinationDistance или config.RouteRuleSourceDestination
func NewRouteUseCase(
	tx repository.TxManager,
	store repository.Store,
	cache *ListCache,
	rule string,
	logger *zap.Logger,
) *RouteUseCase {
	return &RouteUseCase{
		tx:     tx,
		store:  store,
		cache:  cache,
		rule:   rule,
		logger: logger,
	}
}

// CreateRoute валидирует и сохраняет маршрут в одной транзакции.
// Гонка двух одинаковых запросов ловится уникальным ключом (source, destination).
func (uc *RouteUseCase) CreateRoute(ctx context.Context, req dto.CreateRouteRequest) (*domain.Route, error) {
	var route domain.Route

	err := uc.tx.WithinTx(ctx, func(ctx context.Context, store repository.Store) error {
		route = domain.Route{
			SourceID:      req.Source,
			DestinationID: req.Destination,
			Distance:      req.Distance,
		}
		if err := ValidateRoute(ctx, store.Routes(), route, uc.rule); err != nil {
			return err
		}
		return store.Routes().Create(ctx, &route)
	})
	if err != nil {
		if _, ok := errors.AsAppError(err); !ok {
			uc.logger.Warn("Failed to create route",
				zap.Int64("source", req.Source),
				zap.Int64("destination", req.Destination),
				zap.Error(err),
			)
		}
		return nil, translateStoreError(err)
	}

	uc.logger.Info("Route created",
		zap.Int64("id", route.ID),
		zap.Int64("source", route.SourceID),
		zap.Int64("destination", route.DestinationID),
	)
	uc.cache.Invalidate(ctx, nsRoutes)
	return &route, nil
}

func (uc *RouteUseCase) ListRoutes(ctx context.Context, page domain.Page) ([]domain.Route, int, error) {
	items, total, err := cachedList(ctx, uc.cache, nsRoutes, page.Normalize(), uc.store.Routes().List)
	if err != nil {
		uc.logger.Error("Failed to list routes", zap.Error(err))
		return nil, 0, translateStoreError(err)
	}
	return items, total, nil
}
