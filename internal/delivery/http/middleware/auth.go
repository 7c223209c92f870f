package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/airport-service/internal/pkg/auth"
	"github.com/airport-service/internal/pkg/errors"
	"github.com/airport-service/internal/pkg/utils"
)

const identityKey = "identity"

// Auth - требует заголовок "Authorization: Bearer <token>", иначе 401
func Auth(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		scheme, raw, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		identity, err := tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			return utils.SendError(c, errors.ErrUnauthorized.WithMessage("Given token not valid for any token type"))
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// RequireStaff - пропускает только персонал, иначе 403. Ставится после Auth.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFrom(c)
		if !ok {
			return utils.SendError(c, errors.ErrUnauthorized)
		}
		if !identity.IsStaff {
			return utils.SendError(c, errors.ErrForbidden)
		}
		return c.Next()
	}
}

// SetIdentity кладёт пользователя в контекст запроса
func SetIdentity(c *fiber.Ctx, identity auth.Identity) {
	c.Locals(identityKey, identity)
}

// IdentityFrom - пользователь, положенный Auth
func IdentityFrom(c *fiber.Ctx) (auth.Identity, bool) {
	identity, ok := c.Locals(identityKey).(auth.Identity)
	return identity, ok
}
