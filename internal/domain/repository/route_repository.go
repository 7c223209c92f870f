package repository

import (
	"context"

	"github.com/airport-service/internal/domain"
)

// RouteRepository - маршруты
type RouteRepository interface {
	Create(ctx context.Context, route *domain.Route) error
	List(ctx context.Context, page domain.Page) ([]domain.Route, int, error)

	// ExistsByDestinationAndDistance - есть маршрут с тем же destination и distance (source не учитывается)
	ExistsByDestinationAndDistance(ctx context.Context, destinationID int64, distance int) (bool, error)

	// ExistsBySourceAndDestination - есть маршрут с той же парой source -> destination
	ExistsBySourceAndDestination(ctx context.Context, sourceID, destinationID int64) (bool, error)
}
