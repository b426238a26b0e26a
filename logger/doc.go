// Package logger provides slog attribute helpers for the toolbox's logging
// vocabulary and a pgx query tracer.
//
// The attribute helpers follow the empty-Attr pattern: passing a nil error
// or empty string yields an attribute slog drops silently, so call sites
// need no nil checks.
//
// Tracer hooks into pgx's tracing interface to log every statement a
// connection runs, with its duration and outcome:
//
//	cfg, err := pgx.ParseConfig(dsn)
//	if err != nil {
//		return err
//	}
//	cfg.Tracer = logger.NewTracer(slog.Default(), logger.WithLevel(slog.LevelInfo))
//	conn, err := pgx.ConnectConfig(ctx, cfg)
//
// Bind arguments are omitted by default; opt in with WithQueryArgs when the
// values are known to be safe to record.
package logger
