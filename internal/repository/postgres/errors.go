package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/airport-service/internal/domain/repository"
)

// SQLSTATE коды Postgres
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// pgError - код и имя ограничения из ошибки драйвера (pgx или lib/pq)
func pgError(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}

	return "", "", false
}

// translateError приводит ошибки драйвера к ошибкам слоя репозиториев
func translateError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}

	code, constraint, ok := pgError(err)
	if ok {
		var kind repository.ConstraintKind
		switch code {
		case codeUniqueViolation:
			kind = repository.ConstraintUnique
		case codeForeignKeyViolation:
			kind = repository.ConstraintForeignKey
		case codeCheckViolation:
			kind = repository.ConstraintCheck
		}
		if kind != 0 {
			return &repository.ConstraintError{
				Kind:       kind,
				Constraint: constraint,
				Err:        fmt.Errorf("%s: %w", op, err),
			}
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

// isRetryable - транзакцию можно повторить целиком
func isRetryable(err error) bool {
	code, _, ok := pgError(err)
	return ok && (code == codeSerializationFailure || code == codeDeadlockDetected)
}
