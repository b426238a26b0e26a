// Package pgdb provides PostgreSQL connection pool management, migrations
// and driver-error classification for the toolbox.
//
// Connect wraps pgx pool construction with exponential-backoff retry logic
// and a verification ping, so services restarting alongside their database
// do not fail on the first refused connection. Migrate applies goose
// migrations over the pgx stdlib driver. Healthcheck returns a probe
// function for readiness endpoints.
//
// # Configuration
//
// All configuration is handled through the Config struct with environment
// variable mapping, loadable with the config package:
//
//	var cfg pgdb.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pgdb.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pgdb.Migrate(ctx, pool, cfg, logger); err != nil {
//		if !errors.Is(err, pgdb.ErrMigrationsDirNotFound) {
//			return err
//		}
//	}
//
// # Error Classification
//
// The package owns the toolbox's driver-error translation. Classification
// helpers cover the common SQLSTATE patterns:
//
//	pgdb.IsNotFound(err)              // pgx.ErrNoRows
//	pgdb.IsDuplicateKey(err)          // unique constraint violation
//	pgdb.IsForeignKeyViolation(err)   // referential integrity violation
//	pgdb.IsInsufficientPrivilege(err) // current role lacks privilege
//	pgdb.IsTxClosed(err)              // use of a finished transaction
//
// Translate maps the server's duplicate-object and undefined-object errors
// to ErrAlreadyExists and ErrDoesNotExist; the admin package routes every
// driver error through it so callers can branch with errors.Is.
package pgdb
