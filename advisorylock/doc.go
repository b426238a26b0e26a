// Package advisorylock manages PostgreSQL advisory locks with scoped
// acquisition and guaranteed release.
//
// Advisory locks are cooperative, server-side locks keyed by a 64-bit
// integer, independent of table or row locks. Key hashes a logical resource
// name into that key space deterministically, so unrelated processes that
// agree on a name contend on the same lock.
//
//	err := advisorylock.WithName(ctx, conn, "migrations", func(ctx context.Context) error {
//		return applySchemaChanges(ctx, conn)
//	})
//
// By default the scope blocks until the lock is free. Fail-fast acquisition
// is an option:
//
//	err := advisorylock.WithName(ctx, conn, "migrations", body, advisorylock.WithNonBlocking())
//	if errors.Is(err, advisorylock.ErrLockUnavailable) {
//		// Another instance is already migrating.
//	}
//
// The Lock type exposes the acquire and release calls directly for callers
// who need to hold a lock across a scope the package cannot see, such as a
// long-lived worker session. Transaction-level locks (XactLock) have no
// release call; the server drops them when the transaction ends.
//
// Session-level locks are held by the connection's session. Do not return a
// pooled connection while holding one, and do not share one connection
// between concurrently active scopes.
package advisorylock
