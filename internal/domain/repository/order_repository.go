package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/airport-service/internal/domain"
)

// OrderRepository - заказы и их билеты
type OrderRepository interface {
	// Create сохраняет строку заказа, заполняя ID и CreatedAt
	Create(ctx context.Context, order *domain.Order) error

	// CreateTicket сохраняет билет заказа, заполняя ID
	CreateTicket(ctx context.Context, ticket *domain.Ticket) error

	// SeatTaken - место на рейсе уже продано
	SeatTaken(ctx context.Context, key domain.SeatKey) (bool, error)

	// List возвращает заказы (новые первыми) с билетами; userID == nil - все заказы
	List(ctx context.Context, userID *uuid.UUID, page domain.Page) ([]domain.Order, int, error)
}

// UserRepository - пользователи
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
