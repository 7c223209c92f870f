package dto

import (
	"time"

	"github.com/airport-service/internal/domain"
)

// AirplaneResponse - самолёт с вычисляемой вместимостью
type AirplaneResponse struct {
	domain.Airplane
	Capacity int `json:"capacity"`
}

func NewAirplaneResponse(a domain.Airplane) AirplaneResponse {
	return AirplaneResponse{Airplane: a, Capacity: a.Capacity()}
}

func NewAirplaneResponses(items []domain.Airplane) []AirplaneResponse {
	out := make([]AirplaneResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewAirplaneResponse(a))
	}
	return out
}

// CrewResponse - член экипажа с полным именем
type CrewResponse struct {
	domain.Crew
	FullName string `json:"full_name"`
}

func NewCrewResponse(c domain.Crew) CrewResponse {
	return CrewResponse{Crew: c, FullName: c.FullName()}
}

func NewCrewResponses(items []domain.Crew) []CrewResponse {
	out := make([]CrewResponse, 0, len(items))
	for _, c := range items {
		out = append(out, NewCrewResponse(c))
	}
	return out
}

// TicketError - ошибка конкретного билета заказа (index - позиция в запросе)
type TicketError struct {
	Index   int    `json:"index"`
	Field   string `json:"field,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TokenResponse - bearer токен
type TokenResponse struct {
	Access    string    `json:"access"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HealthResponse - состояние зависимостей
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis,omitempty"`
}
