package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/airport-service/internal/domain"
)

// MockRouteRepository - mock для RouteRepository
type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	args := m.Called(ctx, route)
	return args.Error(0)
}

func (m *MockRouteRepository) List(ctx context.Context, page domain.Page) ([]domain.Route, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Route), args.Int(1), args.Error(2)
}

func (m *MockRouteRepository) ExistsByDestinationAndDistance(ctx context.Context, destinationID int64, distance int) (bool, error) {
	args := m.Called(ctx, destinationID, distance)
	return args.Bool(0), args.Error(1)
}

func (m *MockRouteRepository) ExistsBySourceAndDestination(ctx context.Context, sourceID, destinationID int64) (bool, error) {
	args := m.Called(ctx, sourceID, destinationID)
	return args.Bool(0), args.Error(1)
}

// MockFlightRepository - mock для FlightRepository
type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) List(ctx context.Context, page domain.Page) ([]domain.Flight, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Flight), args.Int(1), args.Error(2)
}

func (m *MockFlightRepository) ExistsSchedule(ctx context.Context, flight domain.Flight) (bool, error) {
	args := m.Called(ctx, flight)
	return args.Bool(0), args.Error(1)
}

// MockCacheRepository - mock для CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Version(ctx context.Context, namespace string) (int64, error) {
	args := m.Called(ctx, namespace)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCacheRepository) BumpVersion(ctx context.Context, namespace string) error {
	args := m.Called(ctx, namespace)
	return args.Error(0)
}

// MockStreamRepository - mock для StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) (string, error) {
	args := m.Called(ctx, stream, data)
	return args.String(0), args.Error(1)
}
