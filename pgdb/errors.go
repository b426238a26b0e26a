package pgdb

import "errors"

// Domain-specific errors for consistent handling across the toolbox.
// Use errors.Is() to check error types for retry logic and user-facing messages.
var (
	ErrFailedToOpenConnection   = errors.New("failed to open db connection")
	ErrEmptyConnectionString    = errors.New("empty postgres connection string, use PG_CONN_URL env var")
	ErrHealthcheckFailed        = errors.New("healthcheck failed, connection is not available")
	ErrFailedToParseConfig      = errors.New("failed to parse db config")
	ErrFailedToApplyMigrations  = errors.New("failed to apply migrations")
	ErrMigrationsDirNotFound    = errors.New("migrations directory not found")
	ErrMigrationPathNotProvided = errors.New("migration path not provided")

	// ErrAlreadyExists and ErrDoesNotExist are the translations of the
	// server's duplicate-object and undefined-object errors, used by the
	// idempotent creation helpers in the admin package.
	ErrAlreadyExists = errors.New("object already exists")
	ErrDoesNotExist  = errors.New("object does not exist")
)
