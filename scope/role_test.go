package scope_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtbeach/pgx-toolbox/scope"
)

func newRoleMock(t *testing.T) pgxmock.PgxConnIface {
	t.Helper()
	mock, err := pgxmock.NewConn(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = mock.Close(context.Background()) })
	return mock
}

func TestWithRole(t *testing.T) {
	t.Run("switches role and switches back", func(t *testing.T) {
		mock := newRoleMock(t)
		mock.ExpectQuery("SELECT current_user").
			WillReturnRows(pgxmock.NewRows([]string{"current_user"}).AddRow("app"))
		mock.ExpectExec(`SET ROLE "analyst"`).
			WillReturnResult(pgxmock.NewResult("SET", 0))
		mock.ExpectExec(`SET ROLE "app"`).
			WillReturnResult(pgxmock.NewResult("SET", 0))

		err := scope.WithRole(context.Background(), mock, "analyst", func(ctx context.Context) error {
			return nil
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("switches back after a body error", func(t *testing.T) {
		mock := newRoleMock(t)
		mock.ExpectQuery("SELECT current_user").
			WillReturnRows(pgxmock.NewRows([]string{"current_user"}).AddRow("app"))
		mock.ExpectExec(`SET ROLE "analyst"`).
			WillReturnResult(pgxmock.NewResult("SET", 0))
		mock.ExpectExec(`SET ROLE "app"`).
			WillReturnResult(pgxmock.NewResult("SET", 0))
		boom := errors.New("boom")

		err := scope.WithRole(context.Background(), mock, "analyst", func(ctx context.Context) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown role maps to ErrRole", func(t *testing.T) {
		mock := newRoleMock(t)
		mock.ExpectQuery("SELECT current_user").
			WillReturnRows(pgxmock.NewRows([]string{"current_user"}).AddRow("app"))
		mock.ExpectExec(`SET ROLE "missing"`).
			WillReturnError(&pgconn.PgError{Code: "22023", Message: `role "missing" does not exist`})

		err := scope.WithRole(context.Background(), mock, "missing", func(ctx context.Context) error {
			t.Fatal("body must not run when entry fails")
			return nil
		})

		assert.ErrorIs(t, err, scope.ErrRole)
		assert.ErrorIs(t, err, scope.ErrStateChange)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insufficient privilege maps to ErrRole", func(t *testing.T) {
		mock := newRoleMock(t)
		mock.ExpectQuery("SELECT current_user").
			WillReturnRows(pgxmock.NewRows([]string{"current_user"}).AddRow("app"))
		mock.ExpectExec(`SET ROLE "admin"`).
			WillReturnError(&pgconn.PgError{Code: "42501", Message: `permission denied to set role "admin"`})

		err := scope.WithRole(context.Background(), mock, "admin", func(ctx context.Context) error {
			return nil
		})

		assert.ErrorIs(t, err, scope.ErrRole)
	})

	t.Run("connection failure stays a generic state-change error", func(t *testing.T) {
		mock := newRoleMock(t)
		mock.ExpectQuery("SELECT current_user").
			WillReturnRows(pgxmock.NewRows([]string{"current_user"}).AddRow("app"))
		mock.ExpectExec(`SET ROLE "analyst"`).
			WillReturnError(errors.New("conn closed"))

		err := scope.WithRole(context.Background(), mock, "analyst", func(ctx context.Context) error {
			return nil
		})

		assert.ErrorIs(t, err, scope.ErrStateChange)
		assert.NotErrorIs(t, err, scope.ErrRole)
	})
}
