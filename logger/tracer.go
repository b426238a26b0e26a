package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
)

// Tracer implements pgx.QueryTracer, emitting one structured record per
// query with the statement, duration and outcome. Install it on the
// connection config:
//
//	cfg.ConnConfig.Tracer = logger.NewTracer(log)
type Tracer struct {
	log        *slog.Logger
	level      slog.Level
	errorLevel slog.Level
	logArgs    bool
}

// TracerOption is a functional option for NewTracer.
type TracerOption func(*Tracer)

// WithLevel sets the level for successful queries. Default is Debug.
func WithLevel(level slog.Level) TracerOption {
	return func(t *Tracer) { t.level = level }
}

// WithErrorLevel sets the level for failed queries. Default is Error.
func WithErrorLevel(level slog.Level) TracerOption {
	return func(t *Tracer) { t.errorLevel = level }
}

// WithQueryArgs includes bind arguments in the record. Off by default
// because arguments routinely carry sensitive values.
func WithQueryArgs() TracerOption {
	return func(t *Tracer) { t.logArgs = true }
}

// NewTracer returns a Tracer writing to log.
func NewTracer(log *slog.Logger, opts ...TracerOption) *Tracer {
	t := &Tracer{
		log:        log,
		level:      slog.LevelDebug,
		errorLevel: slog.LevelError,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type traceQueryKey struct{}

type traceQueryData struct {
	start time.Time
	sql   string
	args  []any
}

// TraceQueryStart records the statement and start time in the context.
func (t *Tracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceQueryKey{}, &traceQueryData{
		start: time.Now(),
		sql:   data.SQL,
		args:  data.Args,
	})
}

// TraceQueryEnd emits the record for the query started in the same context.
func (t *Tracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	d, ok := ctx.Value(traceQueryKey{}).(*traceQueryData)
	if !ok {
		return
	}
	attrs := []slog.Attr{SQL(d.sql), Elapsed(d.start)}
	if t.logArgs {
		attrs = append(attrs, slog.Any("args", d.args))
	}
	level := t.level
	if data.Err != nil {
		level = t.errorLevel
		attrs = append(attrs, Error(data.Err))
	} else if tag := data.CommandTag.String(); tag != "" {
		attrs = append(attrs, slog.String("command_tag", tag))
	}
	t.log.LogAttrs(ctx, level, "query", attrs...)
}
