package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/airport-service/internal/domain"
	"github.com/airport-service/internal/pkg/utils"
	"github.com/airport-service/internal/usecase/dto"
)

// RouteService - маршруты (реализуется usecase.RouteUseCase)
type RouteService interface {
	CreateRoute(ctx context.Context, req dto.CreateRouteRequest) (*domain.Route, error)
	ListRoutes(ctx context.Context, page domain.Page) ([]domain.Route, int, error)
}

// FlightService - рейсы (реализуется usecase.FlightUseCase)
type FlightService interface {
	CreateFlight(ctx context.Context, req dto.CreateFlightRequest) (*domain.Flight, error)
	ListFlights(ctx context.Context, page domain.Page) ([]domain.Flight, int, error)
}

// ScheduleHandler - маршруты и рейсы
type ScheduleHandler struct {
	routes  RouteService
	flights FlightService
	logger  *zap.Logger
}

func NewScheduleHandler(routes RouteService, flights FlightService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		routes:  routes,
		flights: flights,
		logger:  logger,
	}
}

// ListRoutes godoc
// @Summary Список маршрутов
// @Tags Routes
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Размер страницы" default(50)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Route}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/routes [get]
func (h *ScheduleHandler) ListRoutes(c *fiber.Ctx) error {
	req, err := parseList(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	page := req.Page()

	items, total, err := h.routes.ListRoutes(c.UserContext(), page)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, items, utils.PageMeta(total, page.Limit, page.Offset))
}

// CreateRoute godoc
// @Summary Создать маршрут
// @Description Маршрут отклоняется, если уже есть маршрут с тем же destination и distance (ROUTE_EXISTS)
// @Description или если destination совпадает с source (DESTINATION_EQUALS_SOURCE).
// @Tags Routes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRouteRequest true "Маршрут"
// @Success 201 {object} utils.SuccessResponse{data=domain.Route}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/v1/routes [post]
func (h *ScheduleHandler) CreateRoute(c *fiber.Ctx) error {
	var req dto.CreateRouteRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.routes.CreateRoute(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, route)
}

// ListFlights godoc
// @Summary Список рейсов
// @Tags Flights
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Размер страницы" default(50)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Flight}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/flights [get]
func (h *ScheduleHandler) ListFlights(c *fiber.Ctx) error {
	req, err := parseList(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	page := req.Page()

	items, total, err := h.flights.ListFlights(c.UserContext(), page)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, items, utils.PageMeta(total, page.Limit, page.Offset))
}

// CreateFlight godoc
// @Summary Создать рейс
// @Description Рейс отклоняется при совпадении route, airplane и обоих времён (FLIGHT_EXISTS)
// @Description или при равных departure_time и arrival_time (INVALID_TIME_RANGE).
// @Tags Flights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFlightRequest true "Рейс"
// @Success 201 {object} utils.SuccessResponse{data=domain.Flight}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/v1/flights [post]
func (h *ScheduleHandler) CreateFlight(c *fiber.Ctx) error {
	var req dto.CreateFlightRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	flight, err := h.flights.CreateFlight(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, flight)
}
