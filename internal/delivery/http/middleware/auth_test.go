package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airport-service/internal/delivery/http/middleware"
	"github.com/airport-service/internal/pkg/auth"
)

func newApp(tokens *auth.TokenManager) *fiber.App {
	app := fiber.New()
	app.Get("/me", middleware.Auth(tokens), func(c *fiber.Ctx) error {
		identity, ok := middleware.IdentityFrom(c)
		if !ok {
			return c.SendStatus(fiber.StatusTeapot)
		}
		return c.SendString(identity.Email)
	})
	app.Post("/admin", middleware.Auth(tokens), middleware.RequireStaff(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Post("/bare", middleware.RequireStaff(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestAuth(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	app := newApp(tokens)

	user := auth.Identity{UserID: uuid.New(), Email: "user@test.com"}
	token, _, err := tokens.Issue(user)
	require.NoError(t, err)

	foreign, _, err := auth.NewTokenManager("other", time.Hour).Issue(user)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "no header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, want: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", want: http.StatusUnauthorized},
		{name: "foreign signature", header: "Bearer " + foreign, want: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + token, want: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + token, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestRequireStaff(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	app := newApp(tokens)

	call := func(path string, identity *auth.Identity) int {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		if identity != nil {
			token, _, err := tokens.Issue(*identity)
			require.NoError(t, err)
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusForbidden, call("/admin", &auth.Identity{UserID: uuid.New(), Email: "user@test.com"}))
	assert.Equal(t, http.StatusNoContent, call("/admin", &auth.Identity{UserID: uuid.New(), Email: "admin@admin.com", IsStaff: true}))
	assert.Equal(t, http.StatusUnauthorized, call("/admin", nil))
	// без Auth в цепочке пользователя нет
	assert.Equal(t, http.StatusUnauthorized, call("/bare", nil))
}
