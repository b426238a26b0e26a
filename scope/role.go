package scope

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes raised by SET ROLE for unknown or unauthorized targets.
const (
	codeInvalidParameterValue = "22023" // role does not exist
	codeUndefinedObject       = "42704"
	codeInsufficientPrivilege = "42501" // session user is not a member of the role
)

type roleAttr struct {
	conn Conn
}

// Role returns the attribute managing the connection's effective role.
// Get reports current_user; Set issues SET ROLE with the target quoted as
// an identifier. Switching to an unknown role or one the session user may
// not assume yields an error matching ErrRole, distinct from connection
// failures, so callers can special-case authorization problems.
func Role(conn Conn) Attribute[string] {
	return roleAttr{conn: conn}
}

func (r roleAttr) Get(ctx context.Context) (string, error) {
	var name string
	if err := r.conn.QueryRow(ctx, "SELECT current_user").Scan(&name); err != nil {
		return "", err
	}
	return name, nil
}

func (r roleAttr) Set(ctx context.Context, role string) error {
	_, err := r.conn.Exec(ctx, "SET ROLE "+pgx.Identifier{role}.Sanitize())
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeInvalidParameterValue, codeUndefinedObject, codeInsufficientPrivilege:
			return fmt.Errorf("%w: %q: %w", ErrRole, role, err)
		}
	}
	return err
}

// WithRole runs fn with the connection's effective role switched to role and
// switches back to the role observed on entry afterwards.
func WithRole(ctx context.Context, conn Conn, role string, fn Func, opts ...Option) error {
	return With(ctx, Role(conn), role, fn, opts...)
}
