package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/airport-service/internal/domain/repository"
)

// store - репозитории поверх *sqlx.DB или *sqlx.Tx
type store struct {
	q sqlx.ExtContext
}

// NewStore возвращает Store, работающий вне транзакции
func NewStore(db *DB) repository.Store {
	return &store{q: db.DB}
}

func (s *store) Airports() repository.AirportRepository           { return &airportRepository{q: s.q} }
func (s *store) AirplaneTypes() repository.AirplaneTypeRepository { return &airplaneTypeRepository{q: s.q} }
func (s *store) Airplanes() repository.AirplaneRepository         { return &airplaneRepository{q: s.q} }
func (s *store) Crews() repository.CrewRepository                 { return &crewRepository{q: s.q} }
func (s *store) Routes() repository.RouteRepository               { return &routeRepository{q: s.q} }
func (s *store) Flights() repository.FlightRepository             { return &flightRepository{q: s.q} }
func (s *store) Orders() repository.OrderRepository               { return &orderRepository{q: s.q} }
func (s *store) Users() repository.UserRepository                 { return &userRepository{q: s.q} }

type txManager struct {
	db         *DB
	maxRetries int
	logger     *zap.Logger
}

// NewTxManager - serializable транзакции с повтором при конфликте сериализации
func NewTxManager(db *DB, maxRetries int, logger *zap.Logger) repository.TxManager {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &txManager{
		db:         db,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

func (m *txManager) WithinTx(ctx context.Context, fn func(ctx context.Context, store repository.Store) error) error {
	var err error
	for attempt := 1; attempt <= m.maxRetries; attempt++ {
		err = m.runOnce(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		m.logger.Warn("Transaction conflict, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", m.maxRetries),
			zap.Error(err),
		)
	}
	return err
}

func (m *txManager) runOnce(ctx context.Context, fn func(ctx context.Context, store repository.Store) error) (err error) {
	tx, err := m.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				m.logger.Error("Failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	if err = fn(ctx, &store{q: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return translateError(err, "commit tx")
	}
	return nil
}
