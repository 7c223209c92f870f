package domain

import "fmt"

type AirplaneType struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Airplane - самолёт с раскладкой rows x seats_in_row
type Airplane struct {
	ID             int64  `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	Rows           int    `json:"rows" db:"rows"`
	SeatsInRow     int    `json:"seats_in_row" db:"seats_in_row"`
	AirplaneTypeID int64  `json:"airplane_type" db:"airplane_type_id"`
}

// Capacity - общее число мест
func (a Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}

// HasSeat проверяет, что место существует в раскладке самолёта
func (a Airplane) HasSeat(row, seat int) bool {
	return row >= 1 && row <= a.Rows && seat >= 1 && seat <= a.SeatsInRow
}

type Crew struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
}

func (c Crew) FullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}
