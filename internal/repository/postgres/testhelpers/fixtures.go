package testhelpers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/airport-service/internal/domain"
)

// Fixture - связанный набор сущностей: два аэропорта, маршрут, самолёт и рейс
type Fixture struct {
	User     domain.User
	Source   domain.Airport
	Dest     domain.Airport
	Route    domain.Route
	Airplane domain.Airplane
	Flight   domain.Flight
}

// SeedFlight creates IEV -> NLV route (400 km), a 30x6 Boeing 737 and one flight on it
func SeedFlight(ctx context.Context, db *sqlx.DB) (*Fixture, error) {
	f := &Fixture{}

	f.User = domain.User{ID: uuid.New(), Email: fmt.Sprintf("user-%s@test.com", uuid.NewString()[:8]), PasswordHash: "x"}
	if err := db.GetContext(ctx, &f.User.CreatedAt,
		`INSERT INTO users (id, email, password_hash, is_staff) VALUES ($1, $2, $3, false) RETURNING created_at`,
		f.User.ID, f.User.Email, f.User.PasswordHash); err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}

	f.Source = domain.Airport{Name: "IEV", ClosestBigCity: "Kyiv"}
	f.Dest = domain.Airport{Name: "NLV", ClosestBigCity: "Mykolaiv"}
	for _, a := range []*domain.Airport{&f.Source, &f.Dest} {
		if err := db.GetContext(ctx, &a.ID,
			`INSERT INTO airports (name, closest_big_city) VALUES ($1, $2) RETURNING id`, a.Name, a.ClosestBigCity); err != nil {
			return nil, fmt.Errorf("seed airport: %w", err)
		}
	}

	f.Route = domain.Route{SourceID: f.Source.ID, DestinationID: f.Dest.ID, Distance: 400}
	if err := db.GetContext(ctx, &f.Route.ID,
		`INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id`,
		f.Route.SourceID, f.Route.DestinationID, f.Route.Distance); err != nil {
		return nil, fmt.Errorf("seed route: %w", err)
	}

	var typeID int64
	if err := db.GetContext(ctx, &typeID, `INSERT INTO airplane_types (name) VALUES ('Passenger') RETURNING id`); err != nil {
		return nil, fmt.Errorf("seed airplane type: %w", err)
	}

	f.Airplane = domain.Airplane{Name: "Boeing 737", Rows: 30, SeatsInRow: 6, AirplaneTypeID: typeID}
	if err := db.GetContext(ctx, &f.Airplane.ID,
		`INSERT INTO airplanes (name, rows, seats_in_row, airplane_type_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		f.Airplane.Name, f.Airplane.Rows, f.Airplane.SeatsInRow, f.Airplane.AirplaneTypeID); err != nil {
		return nil, fmt.Errorf("seed airplane: %w", err)
	}

	f.Flight = domain.Flight{
		RouteID:       f.Route.ID,
		AirplaneID:    f.Airplane.ID,
		DepartureTime: time.Date(2024, 6, 1, 13, 15, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC),
	}
	if err := db.GetContext(ctx, &f.Flight.ID,
		`INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time) VALUES ($1, $2, $3, $4) RETURNING id`,
		f.Flight.RouteID, f.Flight.AirplaneID, f.Flight.DepartureTime, f.Flight.ArrivalTime); err != nil {
		return nil, fmt.Errorf("seed flight: %w", err)
	}

	return f, nil
}

// CountRows returns number of rows in a table
func CountRows(ctx context.Context, db *sqlx.DB, table string) (int, error) {
	var n int
	if err := db.GetContext(ctx, &n, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
