package repository

import (
	"context"

	"github.com/airport-service/internal/domain"
)

// AirportRepository - аэропорты
type AirportRepository interface {
	Create(ctx context.Context, airport *domain.Airport) error
	List(ctx context.Context, page domain.Page) ([]domain.Airport, int, error)
}

// AirplaneTypeRepository - типы самолётов
type AirplaneTypeRepository interface {
	Create(ctx context.Context, airplaneType *domain.AirplaneType) error
	List(ctx context.Context, page domain.Page) ([]domain.AirplaneType, int, error)
}

// AirplaneRepository - самолёты
type AirplaneRepository interface {
	Create(ctx context.Context, airplane *domain.Airplane) error
	List(ctx context.Context, page domain.Page) ([]domain.Airplane, int, error)

	// GetByFlightID возвращает самолёт, выполняющий рейс
	GetByFlightID(ctx context.Context, flightID int64) (*domain.Airplane, error)
}

// CrewRepository - экипаж
type CrewRepository interface {
	Create(ctx context.Context, crew *domain.Crew) error
	List(ctx context.Context, page domain.Page) ([]domain.Crew, int, error)
}
