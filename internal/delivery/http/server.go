package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/airport-service/internal/config"
	"github.com/airport-service/internal/delivery/http/handler"
	"github.com/airport-service/internal/delivery/http/middleware"
	"github.com/airport-service/internal/pkg/auth"
	"github.com/airport-service/internal/pkg/errors"
	"github.com/airport-service/internal/pkg/utils"
)

// Handlers - обработчики, которые регистрирует сервер
type Handlers struct {
	Catalog  *handler.CatalogHandler
	Schedule *handler.ScheduleHandler
	Orders   *handler.OrderHandler
	Users    *handler.UserHandler
	Health   *handler.HealthHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	tokens   *auth.TokenManager
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tokens *auth.TokenManager,
	handlers Handlers,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Airport Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		tokens:   tokens,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSAllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов.
// Списки доступны любому аутентифицированному пользователю, создание справочников только персоналу.
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.handlers.Health.Health)

	// Users
	api.Post("/users", s.handlers.Users.Register)
	api.Post("/users/token", s.handlers.Users.Token)

	authed := middleware.Auth(s.tokens)
	staff := middleware.RequireStaff()

	api.Get("/users/me", authed, s.handlers.Users.Me)

	// Catalog
	api.Get("/crews", authed, s.handlers.Catalog.ListCrews)
	api.Post("/crews", authed, staff, s.handlers.Catalog.CreateCrew)
	api.Get("/airplane_types", authed, s.handlers.Catalog.ListAirplaneTypes)
	api.Post("/airplane_types", authed, staff, s.handlers.Catalog.CreateAirplaneType)
	api.Get("/airplanes", authed, s.handlers.Catalog.ListAirplanes)
	api.Post("/airplanes", authed, staff, s.handlers.Catalog.CreateAirplane)
	api.Get("/airports", authed, s.handlers.Catalog.ListAirports)
	api.Post("/airports", authed, staff, s.handlers.Catalog.CreateAirport)

	// Schedule
	api.Get("/routes", authed, s.handlers.Schedule.ListRoutes)
	api.Post("/routes", authed, staff, s.handlers.Schedule.CreateRoute)
	api.Get("/flights", authed, s.handlers.Schedule.ListFlights)
	api.Post("/flights", authed, staff, s.handlers.Schedule.CreateFlight)

	// Orders
	api.Get("/orders", authed, s.handlers.Orders.ListOrders)
	api.Post("/orders", authed, s.handlers.Orders.CreateOrder)
}

// App - fiber приложение (для тестов через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (404 маршрута, 405, паники) в формате AppError
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if e, ok := err.(*fiber.Error); ok {
			code := "HTTP_ERROR"
			switch e.Code {
			case fiber.StatusNotFound:
				code = errors.ErrNotFound.Code
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			}
			return utils.SendError(c, errors.New(code, e.Message, e.Code))
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}
