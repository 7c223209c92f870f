package domain

// Airport - аэропорт
type Airport struct {
	ID             int64  `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	ClosestBigCity string `json:"closest_big_city" db:"closest_big_city"`
}

// Route - направленный маршрут source -> destination с дистанцией в км
type Route struct {
	ID            int64 `json:"id" db:"id"`
	SourceID      int64 `json:"source" db:"source_id"`
	DestinationID int64 `json:"destination" db:"destination_id"`
	Distance      int   `json:"distance" db:"distance"`
}

// IsSelfLoop - маршрут ведёт в тот же аэропорт
func (r Route) IsSelfLoop() bool {
	return r.SourceID == r.DestinationID
}
