//go:build ignore

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/airport-service/internal/config"
	"github.com/airport-service/internal/pkg/auth"
	"github.com/airport-service/internal/pkg/logger"
	"github.com/airport-service/internal/repository/postgres"
	"github.com/airport-service/internal/usecase"
	"github.com/airport-service/internal/usecase/dto"
)

// Создаёт учётную запись персонала. Использует те же переменные окружения, что и cmd/api.
//
//	go run scripts/create_staff.go -email admin@admin.com -password 1qazcde3
func main() {
	email := flag.String("email", "", "Staff email")
	password := flag.String("password", "", "Staff password (min 8 characters)")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		log.Fatal("email and password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := postgres.New(&cfg.Database, zlog)
	if err != nil {
		zlog.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authUC := usecase.NewAuthUseCase(postgres.NewStore(db).Users(), tokens, zlog)

	user, err := authUC.CreateStaff(ctx, dto.RegisterRequest{Email: *email, Password: *password})
	if err != nil {
		zlog.Fatal("Failed to create staff user", zap.Error(err))
	}

	fmt.Printf("Staff user created: %s (%s)\n", user.Email, user.ID)
}
