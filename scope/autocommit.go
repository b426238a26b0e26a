package scope

import (
	"context"
)

// Transaction status bytes reported by the backend in ReadyForQuery.
const (
	txStatusIdle   = 'I'
	txStatusInTx   = 'T'
	txStatusFailed = 'E'
)

type autocommitAttr struct {
	conn StatusConn
}

// Autocommit returns the attribute managing conn's autocommit mode.
//
// PostgreSQL has no session flag for autocommit: the mode is equivalent to
// not being inside a transaction block. Get inspects the protocol-level
// transaction status and issues no round trip. Set enters a transaction
// block with BEGIN to turn autocommit off, and leaves the open block to
// turn it back on: COMMIT for a healthy block so work done inside the scope
// is kept, ROLLBACK for a failed block, which only accepts rollback.
// Setting the mode that is already in effect is a no-op.
func Autocommit(conn StatusConn) Attribute[bool] {
	return autocommitAttr{conn: conn}
}

func (a autocommitAttr) Get(_ context.Context) (bool, error) {
	return a.conn.TxStatus() == txStatusIdle, nil
}

func (a autocommitAttr) Set(ctx context.Context, autocommit bool) error {
	status := a.conn.TxStatus()
	if (status == txStatusIdle) == autocommit {
		return nil
	}
	stmt := "BEGIN"
	if autocommit {
		stmt = "COMMIT"
		if status == txStatusFailed {
			stmt = "ROLLBACK"
		}
	}
	_, err := a.conn.Exec(ctx, stmt)
	return err
}

// WithAutocommit runs fn with the connection's autocommit mode forced to
// target and restores the prior mode afterwards, re-opening a transaction
// block when the connection was inside one on entry.
func WithAutocommit(ctx context.Context, conn StatusConn, target bool, fn Func, opts ...Option) error {
	return With(ctx, Autocommit(conn), target, fn, opts...)
}
