package pgdb_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jtbeach/pgx-toolbox/pgdb"
)

func pgErr(code string) error {
	return &pgconn.PgError{Code: code, Message: "sqlstate " + code}
}

func TestClassification(t *testing.T) {
	t.Parallel()

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		assert.True(t, pgdb.IsNotFound(pgx.ErrNoRows))
		assert.True(t, pgdb.IsNotFound(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
		assert.False(t, pgdb.IsNotFound(errors.New("other")))
	})

	t.Run("duplicate key", func(t *testing.T) {
		t.Parallel()
		assert.True(t, pgdb.IsDuplicateKey(pgErr("23505")))
		assert.False(t, pgdb.IsDuplicateKey(pgErr("23503")))
	})

	t.Run("foreign key violation", func(t *testing.T) {
		t.Parallel()
		assert.True(t, pgdb.IsForeignKeyViolation(pgErr("23503")))
		assert.False(t, pgdb.IsForeignKeyViolation(nil))
	})

	t.Run("insufficient privilege", func(t *testing.T) {
		t.Parallel()
		assert.True(t, pgdb.IsInsufficientPrivilege(pgErr("42501")))
		assert.False(t, pgdb.IsInsufficientPrivilege(pgErr("42710")))
	})

	t.Run("tx closed", func(t *testing.T) {
		t.Parallel()
		assert.True(t, pgdb.IsTxClosed(pgx.ErrTxClosed))
		assert.False(t, pgdb.IsTxClosed(pgx.ErrNoRows))
	})
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"duplicate object", pgErr("42710"), pgdb.ErrAlreadyExists},
		{"duplicate database", pgErr("42P04"), pgdb.ErrAlreadyExists},
		{"duplicate schema", pgErr("42P06"), pgdb.ErrAlreadyExists},
		{"undefined object", pgErr("42704"), pgdb.ErrDoesNotExist},
		{"invalid catalog name", pgErr("3D000"), pgdb.ErrDoesNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := pgdb.Translate(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
			// The driver error stays in the chain for debugging.
			var pe *pgconn.PgError
			assert.ErrorAs(t, got, &pe)
		})
	}

	t.Run("unclassified errors pass through unchanged", func(t *testing.T) {
		t.Parallel()
		plain := errors.New("conn refused")
		assert.Same(t, plain, pgdb.Translate(plain))

		unique := pgErr("23505")
		assert.Same(t, unique, pgdb.Translate(unique))
	})
}
