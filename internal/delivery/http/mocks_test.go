package http_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/airport-service/internal/domain"
	"github.com/airport-service/internal/pkg/auth"
	"github.com/airport-service/internal/usecase/dto"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) CreateAirport(ctx context.Context, req dto.CreateAirportRequest) (*domain.Airport, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockCatalogService) ListAirports(ctx context.Context, page domain.Page) ([]domain.Airport, int, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Airport), args.Int(1), args.Error(2)
}

func (m *MockCatalogService) CreateAirplaneType(ctx context.Context, req dto.CreateAirplaneTypeRequest) (*domain.AirplaneType, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirplaneType), args.Error(1)
}

func (m *MockCatalogService) ListAirplaneTypes(ctx context.Context, page domain.Page) ([]domain.AirplaneType, int, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.AirplaneType), args.Int(1), args.Error(2)
}

func (m *MockCatalogService) CreateAirplane(ctx context.Context, req dto.CreateAirplaneRequest) (*domain.Airplane, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

func (m *MockCatalogService) ListAirplanes(ctx context.Context, page domain.Page) ([]domain.Airplane, int, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Airplane), args.Int(1), args.Error(2)
}

func (m *MockCatalogService) CreateCrew(ctx context.Context, req dto.CreateCrewRequest) (*domain.Crew, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crew), args.Error(1)
}

func (m *MockCatalogService) ListCrews(ctx context.Context, page domain.Page) ([]domain.Crew, int, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Crew), args.Int(1), args.Error(2)
}

type MockRouteService struct {
	mock.Mock
}

func (m *MockRouteService) CreateRoute(ctx context.Context, req dto.CreateRouteRequest) (*domain.Route, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteService) ListRoutes(ctx context.Context, page domain.Page) ([]domain.Route, int, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Route), args.Int(1), args.Error(2)
}

type MockFlightService struct {
	mock.Mock
}

func (m *MockFlightService) CreateFlight(ctx context.Context, req dto.CreateFlightRequest) (*domain.Flight, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightService) ListFlights(ctx context.Context, page domain.Page) ([]domain.Flight, int, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]domain.Flight), args.Int(1), args.Error(2)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, userID uuid.UUID, req dto.CreateOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, identity auth.Identity, page domain.Page) ([]domain.Order, int, error) {
	args := m.Called(ctx, identity, page)
	return args.Get(0).([]domain.Order), args.Int(1), args.Error(2)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Token(ctx context.Context, req dto.TokenRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenResponse), args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Health(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
