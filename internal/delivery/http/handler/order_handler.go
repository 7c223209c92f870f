package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/airport-service/internal/delivery/http/middleware"
	"github.com/airport-service/internal/domain"
	"github.com/airport-service/internal/pkg/auth"
	"github.com/airport-service/internal/pkg/errors"
	"github.com/airport-service/internal/pkg/utils"
	"github.com/airport-service/internal/usecase/dto"
)

// OrderService - заказы (реализуется usecase.OrderUseCase)
type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req dto.CreateOrderRequest) (*domain.Order, error)
	ListOrders(ctx context.Context, identity auth.Identity, page domain.Page) ([]domain.Order, int, error)
}

type OrderHandler struct {
	orders OrderService
	logger *zap.Logger
}

func NewOrderHandler(orders OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		logger: logger,
	}
}

// ListOrders godoc
// @Summary Заказы
// @Description Персонал видит все заказы, остальные пользователи только свои. Новые первыми.
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Размер страницы" default(50)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Order}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	req, err := parseList(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	page := req.Page()

	orders, total, err := h.orders.ListOrders(c.UserContext(), identity, page)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, orders, utils.PageMeta(total, page.Limit, page.Offset))
}

// CreateOrder godoc
// @Summary Создать заказ
// @Description Все билеты сохраняются атомарно. Ошибки билетов возвращаются в error.details.tickets
// @Description с индексом билета в запросе (EMPTY_TICKET_LIST, SEAT_TAKEN, SEAT_OUT_OF_RANGE).
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOrderRequest true "Заказ"
// @Success 201 {object} utils.SuccessResponse{data=domain.Order}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/orders [post]
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	var req dto.CreateOrderRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	order, err := h.orders.CreateOrder(c.UserContext(), identity.UserID, req)
	if err != nil {
		h.logger.Debug("Order rejected",
			zap.String("user_id", identity.UserID.String()),
			zap.Int("tickets", len(req.Tickets)),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, order)
}
