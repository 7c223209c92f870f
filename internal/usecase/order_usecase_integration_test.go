package usecase_test

import (
	"context"
	stderrors "errors"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/airport-service/internal/config"
	"github.com/airport-service/internal/domain"
	"github.com/airport-service/internal/pkg/auth"
	"github.com/airport-service/internal/pkg/errors"
	"github.com/airport-service/internal/repository/postgres/testhelpers"
	"github.com/airport-service/internal/usecase"
	"github.com/airport-service/internal/usecase/dto"
)

// BookingIntegrationSuite - usecase'ы поверх настоящего Postgres
// Требует INTEGRATION_TEST=true и базу из TEST_DB_* (по умолчанию localhost:5433/airport_test)
type BookingIntegrationSuite struct {
	suite.Suite
	db      *testhelpers.TestDB
	fixture *testhelpers.Fixture
	orders  *usecase.OrderUseCase
	routes  *usecase.RouteUseCase
	flights *usecase.FlightUseCase
}

func TestBookingIntegrationSuite(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test. Set INTEGRATION_TEST=true to run")
	}
	suite.Run(t, new(BookingIntegrationSuite))
}

func (s *BookingIntegrationSuite) SetupSuite() {
	s.db = testhelpers.SetupTestDB(s.T())
	s.Require().NoError(testhelpers.ApplyMigrations(s.db.DB.DB, "../../migrations"))

	logger := zaptest.NewLogger(s.T())
	store := testhelpers.NewStoreForTest(s.db.DB, logger)
	tx := testhelpers.NewTxManagerForTest(s.db.DB, logger)
	listCache := noopListCache()

	s.orders = usecase.NewOrderUseCase(tx, store, nil, logger)
	s.routes = usecase.NewRouteUseCase(tx, store, listCache, config.RouteRuleDestinationDistance, logger)
	s.flights = usecase.NewFlightUseCase(tx, store, listCache, false, logger)
}

func (s *BookingIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *BookingIntegrationSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.db.Cleanup(ctx))

	fixture, err := testhelpers.SeedFlight(ctx, s.db.DB)
	s.Require().NoError(err)
	s.fixture = fixture
}

func (s *BookingIntegrationSuite) TestConcurrentOrdersForOneSeat() {
	ctx := context.Background()
	req := dto.CreateOrderRequest{Tickets: []dto.TicketRequest{{Row: 12, Seat: 4, Flight: s.fixture.Flight.ID}}}

	const workers = 6
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.orders.CreateOrder(ctx, s.fixture.User.ID, req)
			mu.Lock()
			results = append(results, err)
			mu.Unlock()
		}()
	}
	wg.Wait()

	var ok, taken int
	for _, err := range results {
		switch {
		case err == nil:
			ok++
		case stderrors.Is(err, errors.ErrSeatTaken):
			taken++
		default:
			// исчерпанные повторы сериализации допустимы, но заказ не должен записаться
			s.T().Logf("order failed: %v", err)
		}
	}
	s.Equal(1, ok)

	tickets, err := testhelpers.CountRows(ctx, s.db.DB, "tickets")
	s.Require().NoError(err)
	s.Equal(1, tickets)

	orders, err := testhelpers.CountRows(ctx, s.db.DB, "orders")
	s.Require().NoError(err)
	s.Equal(1, orders, "losing requests leave no order rows")
}

func (s *BookingIntegrationSuite) TestOrderRoundTrip() {
	ctx := context.Background()
	req := dto.CreateOrderRequest{Tickets: []dto.TicketRequest{
		{Row: 3, Seat: 2, Flight: s.fixture.Flight.ID},
		{Row: 1, Seat: 6, Flight: s.fixture.Flight.ID},
	}}

	order, err := s.orders.CreateOrder(ctx, s.fixture.User.ID, req)
	s.Require().NoError(err)

	list, total, err := s.orders.ListOrders(ctx, auth.Identity{UserID: s.fixture.User.ID}, domain.Page{})
	s.Require().NoError(err)
	s.Equal(1, total)
	s.Require().Len(list, 1)
	s.Equal(order.ID, list[0].ID)
	s.Require().Len(list[0].Tickets, 2)
	s.Equal(3, list[0].Tickets[0].Row)
	s.Equal(6, list[0].Tickets[1].Seat)

	_, err = s.orders.CreateOrder(ctx, uuid.New(), req)
	s.Error(err, "unknown user or taken seat must fail")
}

func (s *BookingIntegrationSuite) TestRouteAndFlightRules() {
	ctx := context.Background()

	_, err := s.routes.CreateRoute(ctx, dto.CreateRouteRequest{
		Source:      s.fixture.Dest.ID,
		Destination: s.fixture.Dest.ID,
		Distance:    1,
	})
	s.True(stderrors.Is(err, errors.ErrDestinationEqualsSource))

	_, err = s.routes.CreateRoute(ctx, dto.CreateRouteRequest{
		Source:      s.fixture.Source.ID,
		Destination: s.fixture.Dest.ID,
		Distance:    999,
	})
	s.True(stderrors.Is(err, errors.ErrRouteExists), "unique (source, destination) backstop")

	_, err = s.flights.CreateFlight(ctx, dto.CreateFlightRequest{
		Route:         s.fixture.Route.ID,
		Airplane:      s.fixture.Airplane.ID,
		DepartureTime: s.fixture.Flight.DepartureTime,
		ArrivalTime:   s.fixture.Flight.ArrivalTime,
	})
	s.True(stderrors.Is(err, errors.ErrFlightExists))

	_, err = s.flights.CreateFlight(ctx, dto.CreateFlightRequest{
		Route:         s.fixture.Route.ID,
		Airplane:      999999,
		DepartureTime: s.fixture.Flight.DepartureTime,
		ArrivalTime:   s.fixture.Flight.ArrivalTime.Add(1),
	})
	s.True(stderrors.Is(err, errors.ErrValidationFailed), "unknown airplane violates the foreign key")
}
