package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/airport-service/internal/domain"
)

type airportRepository struct {
	q sqlx.ExtContext
}

func (r *airportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	query := `INSERT INTO airports (name, closest_big_city) VALUES ($1, $2) RETURNING id`
	err := sqlx.GetContext(ctx, r.q, &airport.ID, query, airport.Name, airport.ClosestBigCity)
	return translateError(err, "insert airport")
}

func (r *airportRepository) List(ctx context.Context, page domain.Page) ([]domain.Airport, int, error) {
	var total int
	if err := sqlx.GetContext(ctx, r.q, &total, `SELECT COUNT(*) FROM airports`); err != nil {
		return nil, 0, translateError(err, "count airports")
	}

	airports := make([]domain.Airport, 0)
	query := `SELECT id, name, closest_big_city FROM airports ORDER BY id LIMIT $1 OFFSET $2`
	if err := sqlx.SelectContext(ctx, r.q, &airports, query, page.Limit, page.Offset); err != nil {
		return nil, 0, translateError(err, "list airports")
	}
	return airports, total, nil
}

type airplaneTypeRepository struct {
	q sqlx.ExtContext
}

func (r *airplaneTypeRepository) Create(ctx context.Context, airplaneType *domain.AirplaneType) error {
	query := `INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`
	err := sqlx.GetContext(ctx, r.q, &airplaneType.ID, query, airplaneType.Name)
	return translateError(err, "insert airplane type")
}

func (r *airplaneTypeRepository) List(ctx context.Context, page domain.Page) ([]domain.AirplaneType, int, error) {
	var total int
	if err := sqlx.GetContext(ctx, r.q, &total, `SELECT COUNT(*) FROM airplane_types`); err != nil {
		return nil, 0, translateError(err, "count airplane types")
	}

	types := make([]domain.AirplaneType, 0)
	query := `SELECT id, name FROM airplane_types ORDER BY id LIMIT $1 OFFSET $2`
	if err := sqlx.SelectContext(ctx, r.q, &types, query, page.Limit, page.Offset); err != nil {
		return nil, 0, translateError(err, "list airplane types")
	}
	return types, total, nil
}

type airplaneRepository struct {
	q sqlx.ExtContext
}

func (r *airplaneRepository) Create(ctx context.Context, airplane *domain.Airplane) error {
	query := `
		INSERT INTO airplanes (name, rows, seats_in_row, airplane_type_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := sqlx.GetContext(ctx, r.q, &airplane.ID, query,
		airplane.Name, airplane.Rows, airplane.SeatsInRow, airplane.AirplaneTypeID)
	return translateError(err, "insert airplane")
}

func (r *airplaneRepository) List(ctx context.Context, page domain.Page) ([]domain.Airplane, int, error) {
	var total int
	if err := sqlx.GetContext(ctx, r.q, &total, `SELECT COUNT(*) FROM airplanes`); err != nil {
		return nil, 0, translateError(err, "count airplanes")
	}

	airplanes := make([]domain.Airplane, 0)
	query := `
		SELECT id, name, rows, seats_in_row, airplane_type_id
		FROM airplanes
		ORDER BY id
		LIMIT $1 OFFSET $2`
	if err := sqlx.SelectContext(ctx, r.q, &airplanes, query, page.Limit, page.Offset); err != nil {
		return nil, 0, translateError(err, "list airplanes")
	}
	return airplanes, total, nil
}

func (r *airplaneRepository) GetByFlightID(ctx context.Context, flightID int64) (*domain.Airplane, error) {
	var a domain.Airplane
	query := `
		SELECT a.id, a.name, a.rows, a.seats_in_row, a.airplane_type_id
		FROM flights f
		JOIN airplanes a ON a.id = f.airplane_id
		WHERE f.id = $1`
	if err := sqlx.GetContext(ctx, r.q, &a, query, flightID); err != nil {
		return nil, translateError(err, "get airplane by flight")
	}
	return &a, nil
}

type crewRepository struct {
	q sqlx.ExtContext
}

func (r *crewRepository) Create(ctx context.Context, crew *domain.Crew) error {
	query := `INSERT INTO crews (first_name, last_name) VALUES ($1, $2) RETURNING id`
	err := sqlx.GetContext(ctx, r.q, &crew.ID, query, crew.FirstName, crew.LastName)
	return translateError(err, "insert crew")
}

func (r *crewRepository) List(ctx context.Context, page domain.Page) ([]domain.Crew, int, error) {
	var total int
	if err := sqlx.GetContext(ctx, r.q, &total, `SELECT COUNT(*) FROM crews`); err != nil {
		return nil, 0, translateError(err, "count crews")
	}

	crews := make([]domain.Crew, 0)
	query := `SELECT id, first_name, last_name FROM crews ORDER BY id LIMIT $1 OFFSET $2`
	if err := sqlx.SelectContext(ctx, r.q, &crews, query, page.Limit, page.Offset); err != nil {
		return nil, 0, translateError(err, "list crews")
	}
	return crews, total, nil
}
