package advisorylock

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Conn is the minimal connection surface the lock operates on.
// *pgx.Conn, pgxpool connections and pgxmock mocks all satisfy it.
type Conn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Lock is a session-level advisory lock bound to one connection and one key.
// The lock lives on the server: it is held by the connection's session until
// released or until the session ends. Lock itself keeps no local state, so
// it is safe to create several values for the same (connection, key) pair,
// but the usual advisory-lock semantics apply: acquiring twice on the same
// session stacks, and each acquire needs a matching release.
type Lock struct {
	conn Conn
	key  int64
}

// New returns a lock on conn for the given key.
func New(conn Conn, key int64) *Lock {
	return &Lock{conn: conn, key: key}
}

// NewForName returns a lock on conn keyed by Key(name).
func NewForName(conn Conn, name string) *Lock {
	return New(conn, Key(name))
}

// Key returns the lock's server-side key.
func (l *Lock) Key() int64 { return l.key }

// Acquire takes the lock in exclusive mode, waiting until it is available.
func (l *Lock) Acquire(ctx context.Context) error {
	_, err := l.conn.Exec(ctx, "SELECT pg_advisory_lock($1)", l.key)
	return err
}

// TryAcquire takes the lock in exclusive mode without waiting. It returns
// an error matching ErrLockUnavailable when another session holds the lock.
func (l *Lock) TryAcquire(ctx context.Context) error {
	return l.try(ctx, "SELECT pg_try_advisory_lock($1)")
}

// AcquireShared takes the lock in shared mode, waiting until no session
// holds it exclusively.
func (l *Lock) AcquireShared(ctx context.Context) error {
	_, err := l.conn.Exec(ctx, "SELECT pg_advisory_lock_shared($1)", l.key)
	return err
}

// TryAcquireShared takes the lock in shared mode without waiting.
func (l *Lock) TryAcquireShared(ctx context.Context) error {
	return l.try(ctx, "SELECT pg_try_advisory_lock_shared($1)")
}

// Release gives up one exclusive hold on the lock. It returns an error
// matching ErrNotHeld when the server reports the session does not hold it.
func (l *Lock) Release(ctx context.Context) error {
	return l.release(ctx, "SELECT pg_advisory_unlock($1)")
}

// ReleaseShared gives up one shared hold on the lock.
func (l *Lock) ReleaseShared(ctx context.Context) error {
	return l.release(ctx, "SELECT pg_advisory_unlock_shared($1)")
}

func (l *Lock) try(ctx context.Context, sql string) error {
	var acquired bool
	if err := l.conn.QueryRow(ctx, sql, l.key).Scan(&acquired); err != nil {
		return err
	}
	if !acquired {
		return fmt.Errorf("%w: key %d", ErrLockUnavailable, l.key)
	}
	return nil
}

func (l *Lock) release(ctx context.Context, sql string) error {
	var released bool
	if err := l.conn.QueryRow(ctx, sql, l.key).Scan(&released); err != nil {
		return err
	}
	if !released {
		return fmt.Errorf("%w: key %d", ErrNotHeld, l.key)
	}
	return nil
}

// XactLock takes a transaction-level advisory lock, waiting until it is
// available. The server releases it when the current transaction ends;
// there is no release call.
func XactLock(ctx context.Context, conn Conn, key int64) error {
	_, err := conn.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", key)
	return err
}

// TryXactLock takes a transaction-level advisory lock without waiting,
// returning an error matching ErrLockUnavailable when it is held elsewhere.
func TryXactLock(ctx context.Context, conn Conn, key int64) error {
	var acquired bool
	if err := conn.QueryRow(ctx, "SELECT pg_try_advisory_xact_lock($1)", key).Scan(&acquired); err != nil {
		return err
	}
	if !acquired {
		return fmt.Errorf("%w: key %d", ErrLockUnavailable, key)
	}
	return nil
}
