package scope

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Attribute is one mutable piece of connection session state with get and
// set semantics. Both methods may issue a server round trip.
type Attribute[T any] interface {
	Get(ctx context.Context) (T, error)
	Set(ctx context.Context, value T) error
}

// Func is a caller-supplied scope body. The connection handed to the scope
// entry point remains the handle to use inside fn.
type Func func(ctx context.Context) error

// Options configure scope execution.
type Options struct {
	// RestoreTimeout bounds the restoration round trip. Zero means no limit.
	RestoreTimeout time.Duration
}

// Option is a functional option for scope execution.
type Option func(*Options)

// WithRestoreTimeout bounds the restoration round trip after the scope body
// has run. Useful when the body was cancelled and the caller does not want
// restoration to hold things up indefinitely on a dead connection.
func WithRestoreTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.RestoreTimeout = d
	}
}

// With applies the target value to attr, runs fn, and restores the previous
// value on every exit path: normal return, error from fn, panic, or
// cancellation of ctx while fn is suspended.
//
// Restoration runs under context.WithoutCancel(ctx), so a cancelled context
// never skips it; cancellation is observed by the caller only after the
// previous state has been written back. If both fn and the restoration fail,
// the returned error carries both via errors.Join, matchable with errors.Is
// against the fn error and ErrRestoration.
//
// If reading or applying the target state fails, With returns an error
// wrapping ErrStateChange and fn is never called.
//
// The session state an Attribute mutates is connection-global. Callers must
// not run two scopes concurrently on the same connection.
func With[T any](ctx context.Context, attr Attribute[T], target T, fn Func, opts ...Option) (err error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	prev, err := attr.Get(ctx)
	if err != nil {
		return fmt.Errorf("%w: read previous value: %w", ErrStateChange, err)
	}
	if err := attr.Set(ctx, target); err != nil {
		return fmt.Errorf("%w: %w", ErrStateChange, err)
	}

	defer func() {
		rctx := context.WithoutCancel(ctx)
		if o.RestoreTimeout > 0 {
			var cancel context.CancelFunc
			rctx, cancel = context.WithTimeout(rctx, o.RestoreTimeout)
			defer cancel()
		}
		if rerr := attr.Set(rctx, prev); rerr != nil {
			err = errors.Join(err, fmt.Errorf("%w: %w", ErrRestoration, rerr))
		}
	}()

	return fn(ctx)
}
