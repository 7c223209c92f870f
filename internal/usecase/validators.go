package usecase

import (
	"context"
	"fmt"

	"github.com/airport-service/internal/config"
	"github.com/airport-service/internal/domain"
	"github.com/airport-service/internal/domain/repository"
	"github.com/airport-service/internal/pkg/errors"
)

// ValidateRoute проверяет маршрут перед вставкой. Правила применяются по порядку, первое сработавшее побеждает:
//  1. дубликат: destination_distance - тот же destination и distance (source не сравнивается),
//     source_destination - та же пара source -> destination;
//  2. destination == source.
//
// Возвращает nil, AppError с кодом правила или ошибку хранилища.
func ValidateRoute(ctx context.Context, routes repository.RouteRepository, candidate domain.Route, rule string) error {
	var (
		exists bool
		err    error
		msg    string
	)

	switch rule {
	case config.RouteRuleSourceDestination:
		exists, err = routes.ExistsBySourceAndDestination(ctx, candidate.SourceID, candidate.DestinationID)
		msg = fmt.Sprintf("Route from airport '%d' to airport '%d' already exist.", candidate.SourceID, candidate.DestinationID)
	default:
		exists, err = routes.ExistsByDestinationAndDistance(ctx, candidate.DestinationID, candidate.Distance)
		msg = fmt.Sprintf("Route to airport '%d' with distance %d km already exist.", candidate.DestinationID, candidate.Distance)
	}
	if err != nil {
		return fmt.Errorf("check route duplicate: %w", err)
	}
	if exists {
		return errors.ErrRouteExists.FieldError("route_exist", msg)
	}

	if candidate.IsSelfLoop() {
		return errors.ErrDestinationEqualsSource.FieldError("destination", "Destination cannot be equal to source.")
	}

	return nil
}

// ValidateFlight проверяет рейс перед вставкой: сначала дубликат расписания, затем совпадение времён.
// При requireForward прибытие раньше отправления тоже отклоняется.
func ValidateFlight(ctx context.Context, flights repository.FlightRepository, candidate domain.Flight, requireForward bool) error {
	exists, err := flights.ExistsSchedule(ctx, candidate)
	if err != nil {
		return fmt.Errorf("check flight duplicate: %w", err)
	}
	if exists {
		return errors.ErrFlightExists.FieldError(
			"flight_exist",
			fmt.Sprintf("Flight with route '%d' already exist.", candidate.RouteID),
		)
	}

	if candidate.DepartureTime.Equal(candidate.ArrivalTime) {
		return errors.ErrInvalidTimeRange.FieldError("departure_time", "The departure time and arrival time cannot be same.")
	}
	if requireForward && candidate.ArrivalTime.Before(candidate.DepartureTime) {
		return errors.ErrInvalidTimeRange.FieldError("arrival_time", "The arrival time must be later than the departure time.")
	}

	return nil
}
