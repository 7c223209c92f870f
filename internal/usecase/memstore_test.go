package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/airport-service/internal/domain"
	"github.com/airport-service/internal/domain/repository"
)

// memState - in-memory копия схемы с теми же ограничениями, что и миграция
type memState struct {
	airports      []domain.Airport
	airplaneTypes []domain.AirplaneType
	airplanes     []domain.Airplane
	crews         []domain.Crew
	routes        []domain.Route
	flights       []domain.Flight
	orders        []domain.Order
	tickets       []domain.Ticket
	users         []domain.User
	nextID        int64
}

func (s *memState) clone() *memState {
	c := *s
	c.airports = append([]domain.Airport(nil), s.airports...)
	c.airplaneTypes = append([]domain.AirplaneType(nil), s.airplaneTypes...)
	c.airplanes = append([]domain.Airplane(nil), s.airplanes...)
	c.crews = append([]domain.Crew(nil), s.crews...)
	c.routes = append([]domain.Route(nil), s.routes...)
	c.flights = append([]domain.Flight(nil), s.flights...)
	c.orders = append([]domain.Order(nil), s.orders...)
	c.tickets = append([]domain.Ticket(nil), s.tickets...)
	c.users = append([]domain.User(nil), s.users...)
	return &c
}

func (s *memState) id() int64 {
	s.nextID++
	return s.nextID
}

func uniqueErr(constraint string) error {
	return &repository.ConstraintError{Kind: repository.ConstraintUnique, Constraint: constraint, Err: errDuplicate}
}

func fkErr(constraint string) error {
	return &repository.ConstraintError{Kind: repository.ConstraintForeignKey, Constraint: constraint, Err: errMissing}
}

var (
	errDuplicate = &memError{"duplicate key value"}
	errMissing   = &memError{"foreign key violation"}
)

type memError struct{ msg string }

func (e *memError) Error() string { return e.msg }

// memStore реализует repository.Store и repository.TxManager.
// Транзакции сериализуются мьютексом и работают на копии состояния.
type memStore struct {
	mu    sync.Mutex
	state *memState
	now   func() time.Time

	// ticketInsertErr - ошибка, возвращаемая CreateTicket (гонка за место)
	ticketInsertErr error
	txCount         int
}

func newMemStore() *memStore {
	return &memStore{state: &memState{}, now: time.Now}
}

func (m *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context, store repository.Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txCount++

	work := m.state.clone()
	if err := fn(ctx, &memView{m: m, st: work}); err != nil {
		return err
	}
	m.state = work
	return nil
}

func (m *memStore) view() *memView {
	return &memView{m: m, lock: true}
}

func (m *memStore) Airports() repository.AirportRepository           { return m.view().Airports() }
func (m *memStore) AirplaneTypes() repository.AirplaneTypeRepository { return m.view().AirplaneTypes() }
func (m *memStore) Airplanes() repository.AirplaneRepository         { return m.view().Airplanes() }
func (m *memStore) Crews() repository.CrewRepository                 { return m.view().Crews() }
func (m *memStore) Routes() repository.RouteRepository               { return m.view().Routes() }
func (m *memStore) Flights() repository.FlightRepository             { return m.view().Flights() }
func (m *memStore) Orders() repository.OrderRepository               { return m.view().Orders() }
func (m *memStore) Users() repository.UserRepository                 { return m.view().Users() }

func (m *memStore) snapshot() *memState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

// memView - Store поверх конкретного состояния (общего или транзакционного)
type memView struct {
	m    *memStore
	st   *memState
	lock bool
}

func (v *memView) do(fn func(st *memState) error) error {
	if v.lock {
		v.m.mu.Lock()
		defer v.m.mu.Unlock()
		return fn(v.m.state)
	}
	return fn(v.st)
}

func (v *memView) Airports() repository.AirportRepository           { return memAirports{v} }
func (v *memView) AirplaneTypes() repository.AirplaneTypeRepository { return memAirplaneTypes{v} }
func (v *memView) Airplanes() repository.AirplaneRepository         { return memAirplanes{v} }
func (v *memView) Crews() repository.CrewRepository                 { return memCrews{v} }
func (v *memView) Routes() repository.RouteRepository               { return memRoutes{v} }
func (v *memView) Flights() repository.FlightRepository             { return memFlights{v} }
func (v *memView) Orders() repository.OrderRepository               { return memOrders{v} }
func (v *memView) Users() repository.UserRepository                 { return memUsers{v} }

func paginate[T any](items []T, page domain.Page) ([]T, int) {
	total := len(items)
	if page.Offset >= total {
		return []T{}, total
	}
	end := page.Offset + page.Limit
	if end > total {
		end = total
	}
	return append([]T(nil), items[page.Offset:end]...), total
}

type memAirports struct{ v *memView }

func (r memAirports) Create(_ context.Context, a *domain.Airport) error {
	return r.v.do(func(st *memState) error {
		a.ID = st.id()
		st.airports = append(st.airports, *a)
		return nil
	})
}

func (r memAirports) List(_ context.Context, page domain.Page) (items []domain.Airport, total int, err error) {
	err = r.v.do(func(st *memState) error {
		items, total = paginate(st.airports, page)
		return nil
	})
	return
}

type memAirplaneTypes struct{ v *memView }

func (r memAirplaneTypes) Create(_ context.Context, t *domain.AirplaneType) error {
	return r.v.do(func(st *memState) error {
		t.ID = st.id()
		st.airplaneTypes = append(st.airplaneTypes, *t)
		return nil
	})
}

func (r memAirplaneTypes) List(_ context.Context, page domain.Page) (items []domain.AirplaneType, total int, err error) {
	err = r.v.do(func(st *memState) error {
		items, total = paginate(st.airplaneTypes, page)
		return nil
	})
	return
}

type memAirplanes struct{ v *memView }

func (r memAirplanes) Create(_ context.Context, a *domain.Airplane) error {
	return r.v.do(func(st *memState) error {
		found := false
		for _, t := range st.airplaneTypes {
			found = found || t.ID == a.AirplaneTypeID
		}
		if !found {
			return fkErr("airplanes_airplane_type_id_fkey")
		}
		a.ID = st.id()
		st.airplanes = append(st.airplanes, *a)
		return nil
	})
}

func (r memAirplanes) List(_ context.Context, page domain.Page) (items []domain.Airplane, total int, err error) {
	err = r.v.do(func(st *memState) error {
		items, total = paginate(st.airplanes, page)
		return nil
	})
	return
}

func (r memAirplanes) GetByFlightID(_ context.Context, flightID int64) (*domain.Airplane, error) {
	var out *domain.Airplane
	err := r.v.do(func(st *memState) error {
		for _, f := range st.flights {
			if f.ID != flightID {
				continue
			}
			for _, a := range st.airplanes {
				if a.ID == f.AirplaneID {
					a := a
					out = &a
					return nil
				}
			}
		}
		return repository.ErrNotFound
	})
	return out, err
}

type memCrews struct{ v *memView }

func (r memCrews) Create(_ context.Context, c *domain.Crew) error {
	return r.v.do(func(st *memState) error {
		c.ID = st.id()
		st.crews = append(st.crews, *c)
		return nil
	})
}

func (r memCrews) List(_ context.Context, page domain.Page) (items []domain.Crew, total int, err error) {
	err = r.v.do(func(st *memState) error {
		items, total = paginate(st.crews, page)
		return nil
	})
	return
}

type memRoutes struct{ v *memView }

func (r memRoutes) Create(_ context.Context, route *domain.Route) error {
	return r.v.do(func(st *memState) error {
		for _, existing := range st.routes {
			if existing.SourceID == route.SourceID && existing.DestinationID == route.DestinationID {
				return uniqueErr(repository.ConstraintRouteSourceDestination)
			}
		}
		route.ID = st.id()
		st.routes = append(st.routes, *route)
		return nil
	})
}

func (r memRoutes) List(_ context.Context, page domain.Page) (items []domain.Route, total int, err error) {
	err = r.v.do(func(st *memState) error {
		items, total = paginate(st.routes, page)
		return nil
	})
	return
}

func (r memRoutes) ExistsByDestinationAndDistance(_ context.Context, destinationID int64, distance int) (bool, error) {
	var exists bool
	err := r.v.do(func(st *memState) error {
		for _, route := range st.routes {
			exists = exists || (route.DestinationID == destinationID && route.Distance == distance)
		}
		return nil
	})
	return exists, err
}

func (r memRoutes) ExistsBySourceAndDestination(_ context.Context, sourceID, destinationID int64) (bool, error) {
	var exists bool
	err := r.v.do(func(st *memState) error {
		for _, route := range st.routes {
			exists = exists || (route.SourceID == sourceID && route.DestinationID == destinationID)
		}
		return nil
	})
	return exists, err
}

type memFlights struct{ v *memView }

func (r memFlights) Create(_ context.Context, f *domain.Flight) error {
	return r.v.do(func(st *memState) error {
		for _, existing := range st.flights {
			if existing.SameSchedule(*f) {
				return uniqueErr(repository.ConstraintFlightSchedule)
			}
		}
		f.ID = st.id()
		st.flights = append(st.flights, *f)
		return nil
	})
}

func (r memFlights) List(_ context.Context, page domain.Page) (items []domain.Flight, total int, err error) {
	err = r.v.do(func(st *memState) error {
		items, total = paginate(st.flights, page)
		return nil
	})
	return
}

func (r memFlights) ExistsSchedule(_ context.Context, f domain.Flight) (bool, error) {
	var exists bool
	err := r.v.do(func(st *memState) error {
		for _, existing := range st.flights {
			exists = exists || existing.SameSchedule(f)
		}
		return nil
	})
	return exists, err
}

type memOrders struct{ v *memView }

func (r memOrders) Create(_ context.Context, o *domain.Order) error {
	return r.v.do(func(st *memState) error {
		o.ID = st.id()
		o.CreatedAt = r.v.m.now()
		st.orders = append(st.orders, domain.Order{ID: o.ID, UserID: o.UserID, CreatedAt: o.CreatedAt})
		return nil
	})
}

func (r memOrders) CreateTicket(_ context.Context, t *domain.Ticket) error {
	if r.v.m.ticketInsertErr != nil {
		return r.v.m.ticketInsertErr
	}
	return r.v.do(func(st *memState) error {
		found := false
		for _, f := range st.flights {
			found = found || f.ID == t.FlightID
		}
		if !found {
			return fkErr("tickets_flight_id_fkey")
		}
		for _, existing := range st.tickets {
			if existing.SeatKey() == t.SeatKey() {
				return uniqueErr(repository.ConstraintTicketSeat)
			}
		}
		t.ID = st.id()
		st.tickets = append(st.tickets, *t)
		return nil
	})
}

func (r memOrders) SeatTaken(_ context.Context, key domain.SeatKey) (bool, error) {
	var taken bool
	err := r.v.do(func(st *memState) error {
		for _, t := range st.tickets {
			taken = taken || t.SeatKey() == key
		}
		return nil
	})
	return taken, err
}

func (r memOrders) List(_ context.Context, userID *uuid.UUID, page domain.Page) (items []domain.Order, total int, err error) {
	err = r.v.do(func(st *memState) error {
		var filtered []domain.Order
		for _, o := range st.orders {
			if userID == nil || o.UserID == *userID {
				filtered = append(filtered, o)
			}
		}
		sort.SliceStable(filtered, func(i, j int) bool {
			if filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
				return filtered[i].ID > filtered[j].ID
			}
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
		items, total = paginate(filtered, page)
		for i := range items {
			items[i].Tickets = []domain.Ticket{}
			for _, t := range st.tickets {
				if t.OrderID == items[i].ID {
					items[i].Tickets = append(items[i].Tickets, t)
				}
			}
		}
		return nil
	})
	return
}

type memUsers struct{ v *memView }

func (r memUsers) Create(_ context.Context, u *domain.User) error {
	return r.v.do(func(st *memState) error {
		for _, existing := range st.users {
			if existing.Email == u.Email {
				return uniqueErr(repository.ConstraintUserEmail)
			}
		}
		u.CreatedAt = r.v.m.now()
		st.users = append(st.users, *u)
		return nil
	})
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	var out *domain.User
	err := r.v.do(func(st *memState) error {
		for _, u := range st.users {
			if u.Email == email {
				u := u
				out = &u
				return nil
			}
		}
		return repository.ErrNotFound
	})
	return out, err
}

func (r memUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	var out *domain.User
	err := r.v.do(func(st *memState) error {
		for _, u := range st.users {
			if u.ID == id {
				u := u
				out = &u
				return nil
			}
		}
		return repository.ErrNotFound
	})
	return out, err
}
