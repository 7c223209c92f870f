package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/airport-service/internal/domain"
)

type orderRepository struct {
	q sqlx.ExtContext
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	query := `INSERT INTO orders (user_id) VALUES ($1) RETURNING id, created_at`
	row := r.q.QueryRowxContext(ctx, query, order.UserID)
	return translateError(row.Scan(&order.ID, &order.CreatedAt), "insert order")
}

func (r *orderRepository) CreateTicket(ctx context.Context, ticket *domain.Ticket) error {
	query := `
		INSERT INTO tickets ("row", seat, flight_id, order_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := sqlx.GetContext(ctx, r.q, &ticket.ID, query, ticket.Row, ticket.Seat, ticket.FlightID, ticket.OrderID)
	return translateError(err, "insert ticket")
}

func (r *orderRepository) SeatTaken(ctx context.Context, key domain.SeatKey) (bool, error) {
	var taken bool
	query := `SELECT EXISTS (SELECT 1 FROM tickets WHERE flight_id = $1 AND "row" = $2 AND seat = $3)`
	if err := sqlx.GetContext(ctx, r.q, &taken, query, key.FlightID, key.Row, key.Seat); err != nil {
		return false, translateError(err, "check seat")
	}
	return taken, nil
}

func (r *orderRepository) List(ctx context.Context, userID *uuid.UUID, page domain.Page) ([]domain.Order, int, error) {
	where := ""
	args := []interface{}{}
	if userID != nil {
		where = " WHERE user_id = $1"
		args = append(args, *userID)
	}

	var total int
	if err := sqlx.GetContext(ctx, r.q, &total, `SELECT COUNT(*) FROM orders`+where, args...); err != nil {
		return nil, 0, translateError(err, "count orders")
	}

	orders := make([]domain.Order, 0)
	query := fmt.Sprintf(
		`SELECT id, user_id, created_at FROM orders%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	args = append(args, page.Limit, page.Offset)
	if err := sqlx.SelectContext(ctx, r.q, &orders, query, args...); err != nil {
		return nil, 0, translateError(err, "list orders")
	}

	if err := r.attachTickets(ctx, orders); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// attachTickets загружает билеты для страницы заказов одним запросом
func (r *orderRepository) attachTickets(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(orders))
	byID := make(map[int64]int, len(orders))
	for i := range orders {
		ids = append(ids, orders[i].ID)
		byID[orders[i].ID] = i
		orders[i].Tickets = make([]domain.Ticket, 0)
	}

	query, args, err := sqlx.In(`SELECT id, "row", seat, flight_id, order_id FROM tickets WHERE order_id IN (?) ORDER BY id`, ids)
	if err != nil {
		return translateError(err, "build tickets query")
	}

	var tickets []domain.Ticket
	if err := sqlx.SelectContext(ctx, r.q, &tickets, r.q.Rebind(query), args...); err != nil {
		return translateError(err, "list tickets")
	}

	for _, t := range tickets {
		if i, ok := byID[t.OrderID]; ok {
			orders[i].Tickets = append(orders[i].Tickets, t)
		}
	}
	return nil
}
