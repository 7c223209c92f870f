package repository

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotFound - запись не найдена
	ErrNotFound = errors.New("record not found")
)

// ConstraintKind - тип нарушенного ограничения БД
type ConstraintKind int

const (
	ConstraintUnique ConstraintKind = iota + 1
	ConstraintForeignKey
	ConstraintCheck
)

// Имена ограничений из migrations/000001_init.up.sql
const (
	ConstraintRouteSourceDestination = "routes_source_destination_key"
	ConstraintFlightSchedule         = "flights_unique_schedule"
	ConstraintTicketSeat             = "tickets_flight_row_seat_key"
	ConstraintUserEmail              = "users_email_key"
)

// ConstraintError - нарушение ограничения, обнаруженное хранилищем
type ConstraintError struct {
	Kind       ConstraintKind
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint %q violated: %v", e.Constraint, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// AsConstraintError извлекает ConstraintError из цепочки
func AsConstraintError(err error) (*ConstraintError, bool) {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// Store - репозитории, привязанные к одному соединению или одной транзакции
type Store interface {
	Airports() AirportRepository
	AirplaneTypes() AirplaneTypeRepository
	Airplanes() AirplaneRepository
	Crews() CrewRepository
	Routes() RouteRepository
	Flights() FlightRepository
	Orders() OrderRepository
	Users() UserRepository
}

// TxManager выполняет функцию в одной изолированной транзакции.
// Если fn возвращает ошибку, транзакция откатывается.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error
}
