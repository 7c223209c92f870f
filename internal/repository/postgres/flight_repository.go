package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/airport-service/internal/domain"
)

type flightRepository struct {
	q sqlx.ExtContext
}

func (r *flightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	query := `
		INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := sqlx.GetContext(ctx, r.q, &flight.ID, query,
		flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime)
	return translateError(err, "insert flight")
}

func (r *flightRepository) List(ctx context.Context, page domain.Page) ([]domain.Flight, int, error) {
	var total int
	if err := sqlx.GetContext(ctx, r.q, &total, `SELECT COUNT(*) FROM flights`); err != nil {
		return nil, 0, translateError(err, "count flights")
	}

	flights := make([]domain.Flight, 0)
	query := `
		SELECT id, route_id, airplane_id, departure_time, arrival_time
		FROM flights
		ORDER BY departure_time, id
		LIMIT $1 OFFSET $2`
	if err := sqlx.SelectContext(ctx, r.q, &flights, query, page.Limit, page.Offset); err != nil {
		return nil, 0, translateError(err, "list flights")
	}
	return flights, total, nil
}

func (r *flightRepository) ExistsSchedule(ctx context.Context, flight domain.Flight) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM flights
			WHERE route_id = $1 AND airplane_id = $2 AND departure_time = $3 AND arrival_time = $4
		)`
	err := sqlx.GetContext(ctx, r.q, &exists, query,
		flight.RouteID, flight.AirplaneID, flight.DepartureTime, flight.ArrivalTime)
	if err != nil {
		return false, translateError(err, "check flight schedule")
	}
	return exists, nil
}
