package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/airport-service/internal/domain"
	"github.com/airport-service/internal/pkg/utils"
	"github.com/airport-service/internal/usecase/dto"
)

// CatalogService - справочники (реализуется usecase.CatalogUseCase)
type CatalogService interface {
	CreateAirport(ctx context.Context, req dto.CreateAirportRequest) (*domain.Airport, error)
	ListAirports(ctx context.Context, page domain.Page) ([]domain.Airport, int, error)
	CreateAirplaneType(ctx context.Context, req dto.CreateAirplaneTypeRequest) (*domain.AirplaneType, error)
	ListAirplaneTypes(ctx context.Context, page domain.Page) ([]domain.AirplaneType, int, error)
	CreateAirplane(ctx context.Context, req dto.CreateAirplaneRequest) (*domain.Airplane, error)
	ListAirplanes(ctx context.Context, page domain.Page) ([]domain.Airplane, int, error)
	CreateCrew(ctx context.Context, req dto.CreateCrewRequest) (*domain.Crew, error)
	ListCrews(ctx context.Context, page domain.Page) ([]domain.Crew, int, error)
}

// CatalogHandler - обработчик справочников: аэропорты, типы самолётов, самолёты, экипаж
type CatalogHandler struct {
	catalog CatalogService
	logger  *zap.Logger
}

func NewCatalogHandler(catalog CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// ListAirports godoc
// @Summary Список аэропортов
// @Tags Airports
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Размер страницы" default(50)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Airport}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/airports [get]
func (h *CatalogHandler) ListAirports(c *fiber.Ctx) error {
	req, err := parseList(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	page := req.Page()

	items, total, err := h.catalog.ListAirports(c.UserContext(), page)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, items, utils.PageMeta(total, page.Limit, page.Offset))
}

// CreateAirport godoc
// @Summary Создать аэропорт
// @Tags Airports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAirportRequest true "Аэропорт"
// @Success 201 {object} utils.SuccessResponse{data=domain.Airport}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/v1/airports [post]
func (h *CatalogHandler) CreateAirport(c *fiber.Ctx) error {
	var req dto.CreateAirportRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	airport, err := h.catalog.CreateAirport(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, airport)
}

// ListAirplaneTypes godoc
// @Summary Список типов самолётов
// @Tags AirplaneTypes
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Размер страницы" default(50)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.AirplaneType}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/airplane_types [get]
func (h *CatalogHandler) ListAirplaneTypes(c *fiber.Ctx) error {
	req, err := parseList(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	page := req.Page()

	items, total, err := h.catalog.ListAirplaneTypes(c.UserContext(), page)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, items, utils.PageMeta(total, page.Limit, page.Offset))
}

// CreateAirplaneType godoc
// @Summary Создать тип самолёта
// @Tags AirplaneTypes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAirplaneTypeRequest true "Тип самолёта"
// @Success 201 {object} utils.SuccessResponse{data=domain.AirplaneType}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/v1/airplane_types [post]
func (h *CatalogHandler) CreateAirplaneType(c *fiber.Ctx) error {
	var req dto.CreateAirplaneTypeRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	airplaneType, err := h.catalog.CreateAirplaneType(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, airplaneType)
}

// ListAirplanes godoc
// @Summary Список самолётов
// @Tags Airplanes
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Размер страницы" default(50)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} utils.SuccessResponse{data=[]dto.AirplaneResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/airplanes [get]
func (h *CatalogHandler) ListAirplanes(c *fiber.Ctx) error {
	req, err := parseList(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	page := req.Page()

	items, total, err := h.catalog.ListAirplanes(c.UserContext(), page)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dto.NewAirplaneResponses(items), utils.PageMeta(total, page.Limit, page.Offset))
}

// CreateAirplane godoc
// @Summary Создать самолёт
// @Tags Airplanes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAirplaneRequest true "Самолёт"
// @Success 201 {object} utils.SuccessResponse{data=dto.AirplaneResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/v1/airplanes [post]
func (h *CatalogHandler) CreateAirplane(c *fiber.Ctx) error {
	var req dto.CreateAirplaneRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	airplane, err := h.catalog.CreateAirplane(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, dto.NewAirplaneResponse(*airplane))
}

// ListCrews godoc
// @Summary Список членов экипажа
// @Tags Crews
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Размер страницы" default(50)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} utils.SuccessResponse{data=[]dto.CrewResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/crews [get]
func (h *CatalogHandler) ListCrews(c *fiber.Ctx) error {
	req, err := parseList(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	page := req.Page()

	items, total, err := h.catalog.ListCrews(c.UserContext(), page)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dto.NewCrewResponses(items), utils.PageMeta(total, page.Limit, page.Offset))
}

// CreateCrew godoc
// @Summary Добавить члена экипажа
// @Tags Crews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCrewRequest true "Член экипажа"
// @Success 201 {object} utils.SuccessResponse{data=dto.CrewResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/v1/crews [post]
func (h *CatalogHandler) CreateCrew(c *fiber.Ctx) error {
	var req dto.CreateCrewRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	crew, err := h.catalog.CreateCrew(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, dto.NewCrewResponse(*crew))
}
