package admin_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/jtbeach/pgx-toolbox/admin"
	"github.com/jtbeach/pgx-toolbox/pgdb"
)

func TestCreateDatabase(t *testing.T) {
	t.Run("with owner, template and encoding", func(t *testing.T) {
		mock := newAdminMock(t)
		mock.ExpectExec(`CREATE DATABASE "app_test" OWNER "app" TEMPLATE "template0" ENCODING 'UTF8'`).
			WillReturnResult(pgxmock.NewResult("CREATE", 0))

		err := admin.CreateDatabase(context.Background(), mock, "app_test",
			admin.WithOwner("app"),
			admin.WithTemplate("template0"),
			admin.WithEncoding("UTF8"),
		)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate database translates to ErrAlreadyExists", func(t *testing.T) {
		mock := newAdminMock(t)
		mock.ExpectExec(`CREATE DATABASE "app_test"`).
			WillReturnError(&pgconn.PgError{Code: "42P04", Message: `database "app_test" already exists`})

		err := admin.CreateDatabase(context.Background(), mock, "app_test")
		assert.ErrorIs(t, err, pgdb.ErrAlreadyExists)
	})

	t.Run("ensure tolerates an existing database", func(t *testing.T) {
		mock := newAdminMock(t)
		mock.ExpectExec(`CREATE DATABASE "app_test"`).
			WillReturnError(&pgconn.PgError{Code: "42P04", Message: `database "app_test" already exists`})

		assert.NoError(t, admin.EnsureDatabase(context.Background(), mock, "app_test"))
	})
}

func TestDropDatabase(t *testing.T) {
	t.Run("missing database translates to ErrDoesNotExist", func(t *testing.T) {
		mock := newAdminMock(t)
		mock.ExpectExec(`DROP DATABASE "app_test"`).
			WillReturnError(&pgconn.PgError{Code: "3D000", Message: `database "app_test" does not exist`})

		err := admin.DropDatabase(context.Background(), mock, "app_test")
		assert.ErrorIs(t, err, pgdb.ErrDoesNotExist)
	})

	t.Run("ensure-dropped tolerates a missing database", func(t *testing.T) {
		mock := newAdminMock(t)
		mock.ExpectExec(`DROP DATABASE "app_test"`).
			WillReturnError(&pgconn.PgError{Code: "3D000", Message: `database "app_test" does not exist`})

		assert.NoError(t, admin.EnsureDatabaseDropped(context.Background(), mock, "app_test"))
	})
}
