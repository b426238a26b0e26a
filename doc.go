// Package pgxtoolbox is a convenience layer over the pgx PostgreSQL driver.
//
// It does not implement a protocol, a pool or a query engine of its own;
// every operation delegates to the driver. What it adds is the glue that
// applications rewrite over and over:
//
//   - scope: temporarily change connection session state (autocommit mode,
//     effective role, run-time parameters) with guaranteed restoration on
//     every exit path, including cancellation.
//   - advisorylock: server-side cooperative locks with deterministic
//     string-to-key hashing and scoped acquire/release.
//   - admin: idempotent role and database management helpers.
//   - cloud: detection of managed hosting environments (RDS and Aurora,
//     Cloud SQL, Azure) from the server side of a connection.
//   - pgdb: pool construction with retries, goose migrations, healthchecks
//     and driver-error classification.
//   - logger: slog attribute helpers and a pgx query tracer.
//   - config: environment-based configuration loading.
//
// Each package stands alone; import what you need.
package pgxtoolbox
