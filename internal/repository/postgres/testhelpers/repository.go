package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/airport-service/internal/domain/repository"
	"github.com/airport-service/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewStoreForTest creates a non-transactional store over the test database
func NewStoreForTest(db *sqlx.DB, logger *zap.Logger) repository.Store {
	return postgres.NewStore(NewDBForTest(db, logger))
}

// NewTxManagerForTest creates a serializable transaction manager over the test database
func NewTxManagerForTest(db *sqlx.DB, logger *zap.Logger) repository.TxManager {
	return postgres.NewTxManager(NewDBForTest(db, logger), 5, logger)
}
