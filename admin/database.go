package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jtbeach/pgx-toolbox/pgdb"
)

// DatabaseOptions configure CreateDatabase.
type DatabaseOptions struct {
	Owner    string
	Template string
	Encoding string
}

// DatabaseOption is a functional option for CreateDatabase.
type DatabaseOption func(*DatabaseOptions)

// WithOwner sets the owner of the new database.
func WithOwner(role string) DatabaseOption {
	return func(o *DatabaseOptions) { o.Owner = role }
}

// WithTemplate sets the template the new database is cloned from.
func WithTemplate(template string) DatabaseOption {
	return func(o *DatabaseOptions) { o.Template = template }
}

// WithEncoding sets the character encoding of the new database.
func WithEncoding(encoding string) DatabaseOption {
	return func(o *DatabaseOptions) { o.Encoding = encoding }
}

// CreateDatabase creates a database. CREATE DATABASE cannot run inside a
// transaction block, so conn must be in autocommit mode. Creating a database
// that already exists returns an error matching pgdb.ErrAlreadyExists.
func CreateDatabase(ctx context.Context, conn Conn, name string, opts ...DatabaseOption) error {
	var o DatabaseOptions
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	b.WriteString("CREATE DATABASE ")
	b.WriteString(pgx.Identifier{name}.Sanitize())
	if o.Owner != "" {
		b.WriteString(" OWNER ")
		b.WriteString(pgx.Identifier{o.Owner}.Sanitize())
	}
	if o.Template != "" {
		b.WriteString(" TEMPLATE ")
		b.WriteString(pgx.Identifier{o.Template}.Sanitize())
	}
	if o.Encoding != "" {
		b.WriteString(" ENCODING ")
		b.WriteString(quoteLiteral(o.Encoding))
	}

	_, err := conn.Exec(ctx, b.String())
	return pgdb.Translate(err)
}

// DropDatabase drops a database. Dropping one that does not exist returns an
// error matching pgdb.ErrDoesNotExist. Like CreateDatabase, it cannot run
// inside a transaction block.
func DropDatabase(ctx context.Context, conn Conn, name string) error {
	_, err := conn.Exec(ctx, "DROP DATABASE "+pgx.Identifier{name}.Sanitize())
	return pgdb.Translate(err)
}

// EnsureDatabase creates a database if it does not already exist.
func EnsureDatabase(ctx context.Context, conn Conn, name string, opts ...DatabaseOption) error {
	err := CreateDatabase(ctx, conn, name, opts...)
	if errors.Is(err, pgdb.ErrAlreadyExists) {
		return nil
	}
	return err
}

// EnsureDatabaseDropped drops a database if it exists.
func EnsureDatabaseDropped(ctx context.Context, conn Conn, name string) error {
	err := DropDatabase(ctx, conn, name)
	if errors.Is(err, pgdb.ErrDoesNotExist) {
		return nil
	}
	return err
}
