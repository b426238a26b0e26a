package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jtbeach/pgx-toolbox/pgdb"
)

// RoleOptions configure CreateRole.
type RoleOptions struct {
	Login      bool
	Superuser  bool
	CreateDB   bool
	CreateRole bool
	Password   string
	InRoles    []string
}

// RoleOption is a functional option for CreateRole.
type RoleOption func(*RoleOptions)

// WithLogin lets the role log in, making it a user in the classic sense.
func WithLogin() RoleOption {
	return func(o *RoleOptions) { o.Login = true }
}

// WithSuperuser makes the role a superuser.
func WithSuperuser() RoleOption {
	return func(o *RoleOptions) { o.Superuser = true }
}

// WithCreateDB grants the role permission to create databases.
func WithCreateDB() RoleOption {
	return func(o *RoleOptions) { o.CreateDB = true }
}

// WithCreateRole grants the role permission to create other roles.
func WithCreateRole() RoleOption {
	return func(o *RoleOptions) { o.CreateRole = true }
}

// WithPassword sets the role's password.
func WithPassword(password string) RoleOption {
	return func(o *RoleOptions) { o.Password = password }
}

// WithMembership adds the new role to the given roles.
func WithMembership(roles ...string) RoleOption {
	return func(o *RoleOptions) { o.InRoles = append(o.InRoles, roles...) }
}

// CreateRole creates a role. Creating a role that already exists returns an
// error matching pgdb.ErrAlreadyExists.
func CreateRole(ctx context.Context, conn Conn, name string, opts ...RoleOption) error {
	var o RoleOptions
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	b.WriteString("CREATE ROLE ")
	b.WriteString(pgx.Identifier{name}.Sanitize())
	if o.Login {
		b.WriteString(" LOGIN")
	}
	if o.Superuser {
		b.WriteString(" SUPERUSER")
	}
	if o.CreateDB {
		b.WriteString(" CREATEDB")
	}
	if o.CreateRole {
		b.WriteString(" CREATEROLE")
	}
	if o.Password != "" {
		b.WriteString(" PASSWORD ")
		b.WriteString(quoteLiteral(o.Password))
	}
	if len(o.InRoles) > 0 {
		b.WriteString(" IN ROLE ")
		b.WriteString(identifierList(o.InRoles))
	}

	_, err := conn.Exec(ctx, b.String())
	return pgdb.Translate(err)
}

// DropRole drops a role. Dropping a role that does not exist returns an
// error matching pgdb.ErrDoesNotExist.
func DropRole(ctx context.Context, conn Conn, name string) error {
	_, err := conn.Exec(ctx, "DROP ROLE "+pgx.Identifier{name}.Sanitize())
	return pgdb.Translate(err)
}

// EnsureRole creates a role if it does not already exist.
func EnsureRole(ctx context.Context, conn Conn, name string, opts ...RoleOption) error {
	err := CreateRole(ctx, conn, name, opts...)
	if errors.Is(err, pgdb.ErrAlreadyExists) {
		return nil
	}
	return err
}

// EnsureRoleDropped drops a role if it exists.
func EnsureRoleDropped(ctx context.Context, conn Conn, name string) error {
	err := DropRole(ctx, conn, name)
	if errors.Is(err, pgdb.ErrDoesNotExist) {
		return nil
	}
	return err
}

// GrantRole makes member a member of role.
func GrantRole(ctx context.Context, conn Conn, role, member string) error {
	_, err := conn.Exec(ctx, "GRANT "+pgx.Identifier{role}.Sanitize()+" TO "+pgx.Identifier{member}.Sanitize())
	return pgdb.Translate(err)
}

// RevokeRole removes member's membership in role.
func RevokeRole(ctx context.Context, conn Conn, role, member string) error {
	_, err := conn.Exec(ctx, "REVOKE "+pgx.Identifier{role}.Sanitize()+" FROM "+pgx.Identifier{member}.Sanitize())
	return pgdb.Translate(err)
}

func identifierList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = pgx.Identifier{n}.Sanitize()
	}
	return strings.Join(quoted, ", ")
}
