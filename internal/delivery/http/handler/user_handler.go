package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/airport-service/internal/delivery/http/middleware"
	"github.com/airport-service/internal/domain"
	"github.com/airport-service/internal/pkg/errors"
	"github.com/airport-service/internal/pkg/utils"
	"github.com/airport-service/internal/usecase/dto"
)

// AuthService - пользователи и токены (реализуется usecase.AuthUseCase)
type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	Token(ctx context.Context, req dto.TokenRequest) (*dto.TokenResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type UserHandler struct {
	auth   AuthService
	logger *zap.Logger
}

func NewUserHandler(auth AuthService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		auth:   auth,
		logger: logger,
	}
}

// Register godoc
// @Summary Регистрация пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Email и пароль"
// @Success 201 {object} utils.SuccessResponse{data=domain.User}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/users [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	user, err := h.auth.Register(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, user)
}

// Token godoc
// @Summary Получить токен
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Email и пароль"
// @Success 200 {object} utils.SuccessResponse{data=dto.TokenResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/users/token [post]
func (h *UserHandler) Token(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	token, err := h.auth.Token(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, token, nil)
}

// Me godoc
// @Summary Текущий пользователь
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.User}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthorized)
	}

	user, err := h.auth.Me(c.UserContext(), identity.UserID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, user, nil)
}
