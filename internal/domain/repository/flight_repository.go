package repository

import (
	"context"

	"github.com/airport-service/internal/domain"
)

// FlightRepository - рейсы
type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	List(ctx context.Context, page domain.Page) ([]domain.Flight, int, error)

	// ExistsSchedule - есть рейс с тем же (route, airplane, departure_time, arrival_time)
	ExistsSchedule(ctx context.Context, flight domain.Flight) (bool, error)
}
