package advisorylock

import "errors"

var (
	// ErrLockUnavailable is returned by non-blocking acquisition when the
	// lock is already held by another session.
	ErrLockUnavailable = errors.New("advisory lock is held by another session")
	// ErrNotHeld is returned when releasing a lock the session does not hold.
	ErrNotHeld = errors.New("advisory lock is not held by this session")
	// ErrRelease is returned when releasing a lock at scope exit fails. It is
	// joined with the scope body's error, if any.
	ErrRelease = errors.New("failed to release advisory lock")
)
