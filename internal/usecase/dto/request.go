package dto

import (
	"time"

	"github.com/airport-service/internal/domain"
)

// ListRequest - параметры постраничного списка (?limit=&offset=)
type ListRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=0"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

func (r ListRequest) Page() domain.Page {
	return domain.Page{Limit: r.Limit, Offset: r.Offset}.Normalize()
}

// CreateAirportRequest - создание аэропорта
type CreateAirportRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	ClosestBigCity string `json:"closest_big_city" validate:"required,max=100"`
}

type CreateAirplaneTypeRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CreateAirplaneRequest - создание самолёта с раскладкой мест
type CreateAirplaneRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Rows         int    `json:"rows" validate:"required,gt=0"`
	SeatsInRow   int    `json:"seats_in_row" validate:"required,gt=0"`
	AirplaneType int64  `json:"airplane_type" validate:"required,gt=0"`
}

type CreateCrewRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}

// CreateRouteRequest - создание маршрута source -> destination
type CreateRouteRequest struct {
	Source      int64 `json:"source" validate:"required,gt=0"`
	Destination int64 `json:"destination" validate:"required,gt=0"`
	Distance    int   `json:"distance" validate:"required,gt=0"`
}

// CreateFlightRequest - создание рейса, время в RFC 3339
type CreateFlightRequest struct {
	Route         int64     `json:"route" validate:"required,gt=0"`
	Airplane      int64     `json:"airplane" validate:"required,gt=0"`
	DepartureTime time.Time `json:"departure_time" validate:"required"`
	ArrivalTime   time.Time `json:"arrival_time" validate:"required"`
}

// TicketRequest - место в заказе
type TicketRequest struct {
	Row    int   `json:"row" validate:"required,gt=0"`
	Seat   int   `json:"seat" validate:"required,gt=0"`
	Flight int64 `json:"flight" validate:"required,gt=0"`
}

// CreateOrderRequest - заказ; пустой список билетов отклоняется usecase'ом как EMPTY_TICKET_LIST
type CreateOrderRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"dive"`
}

// RegisterRequest - регистрация пользователя
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// TokenRequest - получение токена по email и паролю
type TokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
