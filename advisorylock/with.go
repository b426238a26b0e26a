package advisorylock

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Options configure scoped lock acquisition.
type Options struct {
	// NonBlocking makes acquisition fail fast with ErrLockUnavailable
	// instead of waiting for the holder to release the lock.
	NonBlocking bool
	// Shared takes the lock in shared mode.
	Shared bool
	// ReleaseTimeout bounds the release round trip. Zero means no limit.
	ReleaseTimeout time.Duration
}

// Option is a functional option for scoped lock acquisition.
type Option func(*Options)

// WithNonBlocking makes With fail fast when the lock is held elsewhere.
func WithNonBlocking() Option {
	return func(o *Options) { o.NonBlocking = true }
}

// WithShared makes With take the lock in shared mode.
func WithShared() Option {
	return func(o *Options) { o.Shared = true }
}

// WithReleaseTimeout bounds the release round trip at scope exit.
func WithReleaseTimeout(d time.Duration) Option {
	return func(o *Options) { o.ReleaseTimeout = d }
}

// With acquires the advisory lock for key on conn, runs fn, and releases the
// lock on every exit path: normal return, error from fn, panic, or
// cancellation of ctx while fn is suspended. The release runs under
// context.WithoutCancel(ctx), so a cancelled scope still gives the lock
// back before the cancellation reaches the caller.
//
// By default acquisition blocks until the lock is available; WithNonBlocking
// turns an already-held lock into an immediate ErrLockUnavailable without
// running fn. If both fn and the release fail, the returned error carries
// both via errors.Join.
func With(ctx context.Context, conn Conn, key int64, fn func(ctx context.Context) error, opts ...Option) (err error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	l := New(conn, key)
	if err := acquire(ctx, l, o); err != nil {
		return err
	}

	defer func() {
		rctx := context.WithoutCancel(ctx)
		if o.ReleaseTimeout > 0 {
			var cancel context.CancelFunc
			rctx, cancel = context.WithTimeout(rctx, o.ReleaseTimeout)
			defer cancel()
		}
		release := l.Release
		if o.Shared {
			release = l.ReleaseShared
		}
		if rerr := release(rctx); rerr != nil {
			err = errors.Join(err, fmt.Errorf("%w: %w", ErrRelease, rerr))
		}
	}()

	return fn(ctx)
}

// WithName is With keyed by Key(name).
func WithName(ctx context.Context, conn Conn, name string, fn func(ctx context.Context) error, opts ...Option) error {
	return With(ctx, conn, Key(name), fn, opts...)
}

func acquire(ctx context.Context, l *Lock, o Options) error {
	switch {
	case o.Shared && o.NonBlocking:
		return l.TryAcquireShared(ctx)
	case o.Shared:
		return l.AcquireShared(ctx)
	case o.NonBlocking:
		return l.TryAcquire(ctx)
	default:
		return l.Acquire(ctx)
	}
}
