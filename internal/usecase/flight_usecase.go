package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/airport-service/internal/domain"
	"github.com/airport-service/internal/domain/repository"
	"github.com/airport-service/internal/pkg/errors"
	"github.com/airport-service/internal/usecase/dto"
)

type FlightUseCase struct {
	tx             repository.TxManager
	store          repository.Store
	cache          *ListCache
	requireForward bool
	logger         *zap.Logger
}

func NewFlightUseCase(
	tx repository.TxManager,
	store repository.Store,
	cache *ListCache,
	requireForward bool,
	logger *zap.Logger,
) *FlightUseCase {
	return &FlightUseCase{
		tx:             tx,
		store:          store,
		cache:          cache,
		requireForward: requireForward,
		logger:         logger,
	}
}

// CreateFlight валидирует и сохраняет рейс в одной транзакции
func (uc *FlightUseCase) CreateFlight(ctx context.Context, req dto.CreateFlightRequest) (*domain.Flight, error) {
	var flight domain.Flight

	err := uc.tx.WithinTx(ctx, func(ctx context.Context, store repository.Store) error {
		flight = domain.Flight{
			RouteID:       req.Route,
			AirplaneID:    req.Airplane,
			DepartureTime: req.DepartureTime.UTC(),
			ArrivalTime:   req.ArrivalTime.UTC(),
		}
		if err := ValidateFlight(ctx, store.Flights(), flight, uc.requireForward); err != nil {
			return err
		}
		return store.Flights().Create(ctx, &flight)
	})
	if err != nil {
		if _, ok := errors.AsAppError(err); !ok {
			uc.logger.Warn("Failed to create flight",
				zap.Int64("route", req.Route),
				zap.Int64("airplane", req.Airplane),
				zap.Error(err),
			)
		}
		return nil, translateStoreError(err)
	}

	uc.logger.Info("Flight created", zap.Int64("id", flight.ID), zap.Int64("route", flight.RouteID))
	uc.cache.Invalidate(ctx, nsFlights)
	return &flight, nil
}

func (uc *FlightUseCase) ListFlights(ctx context.Context, page domain.Page) ([]domain.Flight, int, error) {
	items, total, err := cachedList(ctx, uc.cache, nsFlights, page.Normalize(), uc.store.Flights().List)
	if err != nil {
		uc.logger.Error("Failed to list flights", zap.Error(err))
		return nil, 0, translateStoreError(err)
	}
	return items, total, nil
}
