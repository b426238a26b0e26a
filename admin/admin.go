package admin

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Conn is the minimal connection surface the helpers operate on.
// *pgx.Conn, pgxpool connections and pgxmock mocks all satisfy it.
type Conn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// quoteLiteral renders s as a PostgreSQL string literal. DDL statements such
// as CREATE ROLE do not accept bind parameters, so values like passwords
// must be embedded in the statement text.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
