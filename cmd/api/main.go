package main

// @title Airport Service API
// @version 1.0.0
// @description Бронирование авиабилетов: справочники аэропортов, самолётов и экипажа, маршруты, рейсы и заказы.
// @description
// @description Основные возможности:
// @description - Маршруты без дубликатов и петель
// @description - Рейсы без повторов расписания и с проверкой времени
// @description - Атомарное создание заказа со всеми билетами, одно место продаётся один раз

// @contact.name API Support
// @contact.email support@airport-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Bearer <token>" из POST /api/v1/users/token

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/airport-service/docs"
	"github.com/airport-service/internal/config"
	httpDelivery "github.com/airport-service/internal/delivery/http"
	"github.com/airport-service/internal/delivery/http/handler"
	"github.com/airport-service/internal/domain/repository"
	"github.com/airport-service/internal/pkg/auth"
	"github.com/airport-service/internal/pkg/logger"
	"github.com/airport-service/internal/repository/cache"
	"github.com/airport-service/internal/repository/postgres"
	redisRepo "github.com/airport-service/internal/repository/redis"
	"github.com/airport-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Airport Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("route_duplicate_rule", cfg.Booking.RouteDuplicateRule),
		zap.Bool("flight_require_forward_time", cfg.Booking.FlightRequireForwardTime),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("order_events_enabled", cfg.Booking.OrderEventsEnabled),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis (только если нужен кеш или события заказов)
	var redisClient *cache.Redis
	if cfg.Cache.Enabled || cfg.Booking.OrderEventsEnabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		log.Info("Redis connected")
	}

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	store := postgres.NewStore(db)
	txManager := postgres.NewTxManager(db, cfg.Database.TxMaxRetries, log)

	cacheRepo := cache.NewNoopCache()
	if cfg.Cache.Enabled {
		cacheRepo = cache.NewCacheRepository(redisClient)
	}

	var publisher repository.StreamRepository
	if cfg.Booking.OrderEventsEnabled {
		publisher = redisRepo.NewStreamRepository(redisClient.Client(), log)
	}

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	listCache := usecase.NewListCache(cacheRepo, cfg.Cache.ListCacheTTL, log)

	catalogUC := usecase.NewCatalogUseCase(store, listCache, log)
	routeUC := usecase.NewRouteUseCase(txManager, store, listCache, cfg.Booking.RouteDuplicateRule, log)
	flightUC := usecase.NewFlightUseCase(txManager, store, listCache, cfg.Booking.FlightRequireForwardTime, log)
	orderUC := usecase.NewOrderUseCase(txManager, store, publisher, log)
	authUC := usecase.NewAuthUseCase(store.Users(), tokens, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	var redisHealth handler.HealthChecker
	if redisClient != nil {
		redisHealth = redisClient
	}

	handlers := httpDelivery.Handlers{
		Catalog:  handler.NewCatalogHandler(catalogUC, log),
		Schedule: handler.NewScheduleHandler(routeUC, flightUC, log),
		Orders:   handler.NewOrderHandler(orderUC, log),
		Users:    handler.NewUserHandler(authUC, log),
		Health:   handler.NewHealthHandler(db, redisHealth, log),
	}

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, tokens, handlers)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
