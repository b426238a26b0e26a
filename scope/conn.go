package scope

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Conn is the minimal connection surface the scopes operate on.
// *pgx.Conn, pgxpool connections and pgxmock mocks all satisfy it.
type Conn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// StatusConn is a Conn that also reports the protocol-level transaction
// status byte ('I' idle, 'T' in transaction block, 'E' failed transaction
// block). Autocommit management needs it because PostgreSQL exposes no
// session variable for the current transaction state.
type StatusConn interface {
	Conn
	TxStatus() byte
}

// pgxStatusConn adapts *pgx.Conn, which reports transaction status through
// its underlying pgconn.PgConn.
type pgxStatusConn struct{ *pgx.Conn }

func (c pgxStatusConn) TxStatus() byte { return c.Conn.PgConn().TxStatus() }

// PgxConn wraps a *pgx.Conn for use where protocol-level transaction status
// is required, such as WithAutocommit.
func PgxConn(conn *pgx.Conn) StatusConn { return pgxStatusConn{conn} }
