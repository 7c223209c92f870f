package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/airport-service/internal/pkg/errors"
	"github.com/airport-service/internal/pkg/validator"
	"github.com/airport-service/internal/usecase/dto"
)

// parseBody разбирает JSON тело и валидирует его тегами validate
func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errors.ErrInvalidRequest.WithMessage("Invalid request body")
	}
	return validator.Validate(req)
}

// parseList - параметры ?limit=&offset=
func parseList(c *fiber.Ctx) (dto.ListRequest, error) {
	var req dto.ListRequest
	if err := c.QueryParser(&req); err != nil {
		return req, errors.ErrInvalidRequest.WithMessage("Invalid pagination parameters")
	}
	if err := validator.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}
