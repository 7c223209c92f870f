package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/airport-service/internal/domain"
	"github.com/airport-service/internal/repository/cache"
	"github.com/airport-service/internal/usecase"
)

type seeded struct {
	source   domain.Airport
	dest     domain.Airport
	route    domain.Route
	airplane domain.Airplane
	flight   domain.Flight
}

// seedFlight создаёт IEV -> NLV (400 км), самолёт 30x6 и рейс на нём
func seedFlight(t *testing.T, store *memStore) seeded {
	t.Helper()
	ctx := context.Background()
	s := seeded{
		source: domain.Airport{Name: "IEV", ClosestBigCity: "Kyiv"},
		dest:   domain.Airport{Name: "NLV", ClosestBigCity: "Mykolaiv"},
	}
	require.NoError(t, store.Airports().Create(ctx, &s.source))
	require.NoError(t, store.Airports().Create(ctx, &s.dest))

	s.route = domain.Route{SourceID: s.source.ID, DestinationID: s.dest.ID, Distance: 400}
	require.NoError(t, store.Routes().Create(ctx, &s.route))

	airplaneType := domain.AirplaneType{Name: "Passenger"}
	require.NoError(t, store.AirplaneTypes().Create(ctx, &airplaneType))

	s.airplane = domain.Airplane{Name: "Boeing 737", Rows: 30, SeatsInRow: 6, AirplaneTypeID: airplaneType.ID}
	require.NoError(t, store.Airplanes().Create(ctx, &s.airplane))

	dep := time.Date(2024, 6, 1, 13, 15, 0, 0, time.UTC)
	s.flight = domain.Flight{RouteID: s.route.ID, AirplaneID: s.airplane.ID, DepartureTime: dep, ArrivalTime: dep.Add(75 * time.Minute)}
	require.NoError(t, store.Flights().Create(ctx, &s.flight))

	return s
}

func noopListCache() *usecase.ListCache {
	return usecase.NewListCache(cache.NewNoopCache(), time.Minute, zap.NewNop())
}
