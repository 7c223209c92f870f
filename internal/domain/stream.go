package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamOrderCreated = "stream:order:created"
)

// OrderCreatedEvent - событие о созданном заказе
type OrderCreatedEvent struct {
	EventID   uuid.UUID     `json:"event_id"`
	OrderID   int64         `json:"order_id"`
	UserID    uuid.UUID     `json:"user_id"`
	CreatedAt time.Time     `json:"created_at"`
	Tickets   []EventTicket `json:"tickets"`
}

type EventTicket struct {
	TicketID int64 `json:"ticket_id"`
	FlightID int64 `json:"flight_id"`
	Row      int   `json:"row"`
	Seat     int   `json:"seat"`
}

// NewOrderCreatedEvent собирает событие из сохранённого заказа
func NewOrderCreatedEvent(o *Order) OrderCreatedEvent {
	tickets := make([]EventTicket, 0, len(o.Tickets))
	for _, t := range o.Tickets {
		tickets = append(tickets, EventTicket{
			TicketID: t.ID,
			FlightID: t.FlightID,
			Row:      t.Row,
			Seat:     t.Seat,
		})
	}
	return OrderCreatedEvent{
		EventID:   uuid.New(),
		OrderID:   o.ID,
		UserID:    o.UserID,
		CreatedAt: o.CreatedAt,
		Tickets:   tickets,
	}
}
