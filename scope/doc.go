// Package scope provides scoped management of PostgreSQL session state with
// guaranteed restoration on every exit path.
//
// A scope reads the current value of one piece of session state (autocommit
// mode, effective role, a run-time parameter), applies a target value, hands
// control to a caller-supplied body, and writes the previous value back when
// the body finishes, whether it returns normally, returns an error, panics,
// or is cancelled through its context. Restoration runs under
// context.WithoutCancel, so cancelling the scope body never leaks the
// transient state onto the connection.
//
// # Usage
//
//	conn, err := pgx.Connect(ctx, dsn)
//	if err != nil {
//		return err
//	}
//	defer conn.Close(ctx)
//
//	// Run a block of statements as the reporting role, then switch back.
//	err = scope.WithRole(ctx, conn, "reporting", func(ctx context.Context) error {
//		_, err := conn.Exec(ctx, "REFRESH MATERIALIZED VIEW sales_daily")
//		return err
//	})
//	if errors.Is(err, scope.ErrRole) {
//		// "reporting" does not exist or the session user may not assume it.
//	}
//
//	// Force autocommit on for statements that refuse transaction blocks.
//	err = scope.WithAutocommit(ctx, scope.PgxConn(conn), true, func(ctx context.Context) error {
//		_, err := conn.Exec(ctx, "VACUUM ANALYZE events")
//		return err
//	})
//
//	// Tighten a session setting for the duration of one call.
//	err = scope.WithSetting(ctx, conn, "statement_timeout", "5s", func(ctx context.Context) error {
//		return runReport(ctx, conn)
//	})
//
// # Error Handling
//
// If applying the target state fails, the body never runs and the returned
// error matches ErrStateChange. If restoring the previous state fails after
// the body has run, the body's error (if any) and an error matching
// ErrRestoration are joined; neither is discarded:
//
//	err := scope.WithRole(ctx, conn, "etl", body)
//	if errors.Is(err, scope.ErrRestoration) {
//		// The connection is in an unknown state; discard it.
//	}
//
// # Custom Attributes
//
// The Attribute interface generalizes the pattern to any session state with
// get/set semantics:
//
//	err := scope.With(ctx, scope.Setting(conn, "search_path"), "tenant_42", body)
//
// # Concurrency
//
// Session state is connection-global. The package does not enforce mutual
// exclusion; callers must not run two scopes concurrently on the same
// connection.
package scope
