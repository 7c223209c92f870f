package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/airport-service/internal/domain"
	"github.com/airport-service/internal/domain/repository"
	"github.com/airport-service/internal/usecase/dto"
)

// CatalogUseCase - справочники: аэропорты, типы самолётов, самолёты, экипаж
type CatalogUseCase struct {
	store  repository.Store
	cache  *ListCache
	logger *zap.Logger
}

func NewCatalogUseCase(
	store repository.Store,
	cache *ListCache,
	logger *zap.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

func (uc *CatalogUseCase) CreateAirport(ctx context.Context, req dto.CreateAirportRequest) (*domain.Airport, error) {
	airport := &domain.Airport{
		Name:           req.Name,
		ClosestBigCity: req.ClosestBigCity,
	}
	if err := uc.store.Airports().Create(ctx, airport); err != nil {
		uc.logger.Error("Failed to create airport", zap.Error(err))
		return nil, translateStoreError(err)
	}

	uc.cache.Invalidate(ctx, nsAirports)
	return airport, nil
}

func (uc *CatalogUseCase) ListAirports(ctx context.Context, page domain.Page) ([]domain.Airport, int, error) {
	items, total, err := cachedList(ctx, uc.cache, nsAirports, page.Normalize(), uc.store.Airports().List)
	if err != nil {
		uc.logger.Error("Failed to list airports", zap.Error(err))
		return nil, 0, translateStoreError(err)
	}
	return items, total, nil
}

func (uc *CatalogUseCase) CreateAirplaneType(ctx context.Context, req dto.CreateAirplaneTypeRequest) (*domain.AirplaneType, error) {
	airplaneType := &domain.AirplaneType{Name: req.Name}
	if err := uc.store.AirplaneTypes().Create(ctx, airplaneType); err != nil {
		uc.logger.Error("Failed to create airplane type", zap.Error(err))
		return nil, translateStoreError(err)
	}

	uc.cache.Invalidate(ctx, nsAirplaneTypes)
	return airplaneType, nil
}

func (uc *CatalogUseCase) ListAirplaneTypes(ctx context.Context, page domain.Page) ([]domain.AirplaneType, int, error) {
	items, total, err := cachedList(ctx, uc.cache, nsAirplaneTypes, page.Normalize(), uc.store.AirplaneTypes().List)
	if err != nil {
		uc.logger.Error("Failed to list airplane types", zap.Error(err))
		return nil, 0, translateStoreError(err)
	}
	return items, total, nil
}

// CreateAirplane - несуществующий airplane_type отклоняется внешним ключом (VALIDATION_FAILED)
func (uc *CatalogUseCase) CreateAirplane(ctx context.Context, req dto.CreateAirplaneRequest) (*domain.Airplane, error) {
	airplane := &domain.Airplane{
		Name:           req.Name,
		Rows:           req.Rows,
		SeatsInRow:     req.SeatsInRow,
		AirplaneTypeID: req.AirplaneType,
	}
	if err := uc.store.Airplanes().Create(ctx, airplane); err != nil {
		uc.logger.Warn("Failed to create airplane", zap.Int64("airplane_type", req.AirplaneType), zap.Error(err))
		return nil, translateStoreError(err)
	}

	uc.cache.Invalidate(ctx, nsAirplanes)
	return airplane, nil
}

func (uc *CatalogUseCase) ListAirplanes(ctx context.Context, page domain.Page) ([]domain.Airplane, int, error) {
	items, total, err := cachedList(ctx, uc.cache, nsAirplanes, page.Normalize(), uc.store.Airplanes().List)
	if err != nil {
		uc.logger.Error("Failed to list airplanes", zap.Error(err))
		return nil, 0, translateStoreError(err)
	}
	return items, total, nil
}

func (uc *CatalogUseCase) CreateCrew(ctx context.Context, req dto.CreateCrewRequest) (*domain.Crew, error) {
	crew := &domain.Crew{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := uc.store.Crews().Create(ctx, crew); err != nil {
		uc.logger.Error("Failed to create crew", zap.Error(err))
		return nil, translateStoreError(err)
	}

	uc.cache.Invalidate(ctx, nsCrews)
	return crew, nil
}

func (uc *CatalogUseCase) ListCrews(ctx context.Context, page domain.Page) ([]domain.Crew, int, error) {
	items, total, err := cachedList(ctx, uc.cache, nsCrews, page.Normalize(), uc.store.Crews().List)
	if err != nil {
		uc.logger.Error("Failed to list crews", zap.Error(err))
		return nil, 0, translateStoreError(err)
	}
	return items, total, nil
}
