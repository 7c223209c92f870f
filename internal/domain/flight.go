package domain

import "time"

// Flight - рейс по маршруту на конкретном самолёте
type Flight struct {
	ID            int64     `json:"id" db:"id"`
	RouteID       int64     `json:"route" db:"route_id"`
	AirplaneID    int64     `json:"airplane" db:"airplane_id"`
	DepartureTime time.Time `json:"departure_time" db:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time" db:"arrival_time"`
}

// SameSchedule - совпадают маршрут, самолёт и оба времени
func (f Flight) SameSchedule(other Flight) bool {
	return f.RouteID == other.RouteID &&
		f.AirplaneID == other.AirplaneID &&
		f.DepartureTime.Equal(other.DepartureTime) &&
		f.ArrivalTime.Equal(other.ArrivalTime)
}
