package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airport-service/internal/domain/repository"
)

func TestTranslateError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, translateError(nil, "op"))
	})

	t.Run("no rows", func(t *testing.T) {
		assert.ErrorIs(t, translateError(sql.ErrNoRows, "op"), repository.ErrNotFound)
	})

	t.Run("pgx unique violation", func(t *testing.T) {
		err := translateError(&pgconn.PgError{
			Code:           codeUniqueViolation,
			ConstraintName: repository.ConstraintTicketSeat,
		}, "insert ticket")

		ce, ok := repository.AsConstraintError(err)
		require.True(t, ok)
		assert.Equal(t, repository.ConstraintUnique, ce.Kind)
		assert.Equal(t, repository.ConstraintTicketSeat, ce.Constraint)
	})

	t.Run("lib/pq foreign key violation", func(t *testing.T) {
		err := translateError(&pq.Error{
			Code:       codeForeignKeyViolation,
			Constraint: "routes_source_id_fkey",
		}, "insert route")

		ce, ok := repository.AsConstraintError(err)
		require.True(t, ok)
		assert.Equal(t, repository.ConstraintForeignKey, ce.Kind)
		assert.Equal(t, "routes_source_id_fkey", ce.Constraint)
	})

	t.Run("other error is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		err := translateError(boom, "op")
		assert.ErrorIs(t, err, boom)
		_, ok := repository.AsConstraintError(err)
		assert.False(t, ok)
	})
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(&pgconn.PgError{Code: codeSerializationFailure}))
	assert.True(t, isRetryable(&pq.Error{Code: codeDeadlockDetected}))
	assert.False(t, isRetryable(&pgconn.PgError{Code: codeUniqueViolation}))
	assert.False(t, isRetryable(errors.New("boom")))
}
