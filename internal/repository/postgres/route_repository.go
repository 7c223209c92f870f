package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/airport-service/internal/domain"
)

type routeRepository struct {
	q sqlx.ExtContext
}

func (r *routeRepository) Create(ctx context.Context, route *domain.Route) error {
	query := `
		INSERT INTO routes (source_id, destination_id, distance)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := sqlx.GetContext(ctx, r.q, &route.ID, query, route.SourceID, route.DestinationID, route.Distance)
	return translateError(err, "insert route")
}

func (r *routeRepository) List(ctx context.Context, page domain.Page) ([]domain.Route, int, error) {
	var total int
	if err := sqlx.GetContext(ctx, r.q, &total, `SELECT COUNT(*) FROM routes`); err != nil {
		return nil, 0, translateError(err, "count routes")
	}

	routes := make([]domain.Route, 0)
	query := `
		SELECT id, source_id, destination_id, distance
		FROM routes
		ORDER BY id
		LIMIT $1 OFFSET $2`
	if err := sqlx.SelectContext(ctx, r.q, &routes, query, page.Limit, page.Offset); err != nil {
		return nil, 0, translateError(err, "list routes")
	}
	return routes, total, nil
}

func (r *routeRepository) ExistsByDestinationAndDistance(ctx context.Context, destinationID int64, distance int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM routes WHERE destination_id = $1 AND distance = $2)`
	if err := sqlx.GetContext(ctx, r.q, &exists, query, destinationID, distance); err != nil {
		return false, translateError(err, "check route by destination and distance")
	}
	return exists, nil
}

func (r *routeRepository) ExistsBySourceAndDestination(ctx context.Context, sourceID, destinationID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM routes WHERE source_id = $1 AND destination_id = $2)`
	if err := sqlx.GetContext(ctx, r.q, &exists, query, sourceID, destinationID); err != nil {
		return false, translateError(err, "check route by source and destination")
	}
	return exists, nil
}
