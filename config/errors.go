package config

import "errors"

var (
	// ErrNilConfig is returned when Load is called with a nil pointer.
	ErrNilConfig = errors.New("config must be a non-nil pointer")
	// ErrParseFailed is returned when environment variables cannot be
	// parsed into the config struct.
	ErrParseFailed = errors.New("failed to parse config from environment")
)
