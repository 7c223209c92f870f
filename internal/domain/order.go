package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order - заказ пользователя, владеет своими билетами
type Order struct {
	ID        int64     `json:"id" db:"id"`
	UserID    uuid.UUID `json:"-" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Tickets   []Ticket  `json:"tickets" db:"-"`
}

// Ticket - место (row, seat) на рейсе
type Ticket struct {
	ID       int64 `json:"id" db:"id"`
	Row      int   `json:"row" db:"row"`
	Seat     int   `json:"seat" db:"seat"`
	FlightID int64 `json:"flight" db:"flight_id"`
	OrderID  int64 `json:"-" db:"order_id"`
}

// SeatKey - ключ места на рейсе
type SeatKey struct {
	FlightID int64
	Row      int
	Seat     int
}

func (t Ticket) SeatKey() SeatKey {
	return SeatKey{FlightID: t.FlightID, Row: t.Row, Seat: t.Seat}
}
