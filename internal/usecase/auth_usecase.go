package usecase

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/airport-service/internal/domain"
	"github.com/airport-service/internal/domain/repository"
	"github.com/airport-service/internal/pkg/auth"
	"github.com/airport-service/internal/pkg/errors"
	"github.com/airport-service/internal/usecase/dto"
)

// AuthUseCase - регистрация пользователей и выдача токенов
type AuthUseCase struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
	cost   int
	logger *zap.Logger
}

func NewAuthUseCase(
	users repository.UserRepository,
	tokens *auth.TokenManager,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		users:  users,
		tokens: tokens,
		cost:   bcrypt.DefaultCost,
		logger: logger,
	}
}

// Register создаёт обычного пользователя
func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	return uc.createUser(ctx, req.Email, req.Password, false)
}

// CreateStaff создаёт пользователя с правом изменять справочники
func (uc *AuthUseCase) CreateStaff(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	return uc.createUser(ctx, req.Email, req.Password, true)
}

func (uc *AuthUseCase) createUser(ctx context.Context, email, password string, isStaff bool) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.cost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        normalizeEmail(email),
		PasswordHash: string(hash),
		IsStaff:      isStaff,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		if _, ok := repository.AsConstraintError(err); !ok {
			uc.logger.Error("Failed to create user", zap.Error(err))
		}
		return nil, translateStoreError(err)
	}

	uc.logger.Info("User registered", zap.String("user_id", user.ID.String()), zap.Bool("is_staff", isStaff))
	return user, nil
}

// Token проверяет пароль и выдаёт bearer токен
func (uc *AuthUseCase) Token(ctx context.Context, req dto.TokenRequest) (*dto.TokenResponse, error) {
	user, err := uc.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.ErrInvalidCredentials
		}
		uc.logger.Error("Failed to get user by email", zap.Error(err))
		return nil, translateStoreError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.tokens.Issue(auth.Identity{
		UserID:  user.ID,
		Email:   user.Email,
		IsStaff: user.IsStaff,
	})
	if err != nil {
		uc.logger.Error("Failed to issue token", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return &dto.TokenResponse{
		Access:    token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt.UTC().Truncate(time.Second),
	}, nil
}

// Me - текущий пользователь; удалённый пользователь с живым токеном получает 401
func (uc *AuthUseCase) Me(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.ErrUnauthorized
		}
		uc.logger.Error("Failed to get user", zap.Error(err))
		return nil, translateStoreError(err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
