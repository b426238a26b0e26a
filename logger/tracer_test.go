package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtbeach/pgx-toolbox/logger"
)

func traceOne(t *testing.T, tracer *logger.Tracer, buf *bytes.Buffer, sql string, args []any, end pgx.TraceQueryEndData) map[string]any {
	t.Helper()
	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: sql, Args: args})
	tracer.TraceQueryEnd(ctx, nil, end)
	if buf.Len() == 0 {
		return nil
	}
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestTracer(t *testing.T) {
	t.Parallel()

	t.Run("logs statement and outcome", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		tracer := logger.NewTracer(log)

		record := traceOne(t, tracer, &buf, "SELECT 1", nil, pgx.TraceQueryEndData{
			CommandTag: pgconn.NewCommandTag("SELECT 1"),
		})

		require.NotNil(t, record)
		assert.Equal(t, "query", record["msg"])
		assert.Equal(t, "SELECT 1", record["sql"])
		assert.Contains(t, record, "elapsed")
		assert.NotContains(t, record, "error")
	})

	t.Run("failed queries log at the error level with the error", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))
		tracer := logger.NewTracer(log)

		record := traceOne(t, tracer, &buf, "SELECT 1/0", nil, pgx.TraceQueryEndData{
			Err: errors.New("division by zero"),
		})

		require.NotNil(t, record)
		assert.Equal(t, "ERROR", record["level"])
		assert.Contains(t, record, "error")
	})

	t.Run("successful queries below handler level are dropped", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil)) // info level
		tracer := logger.NewTracer(log)                 // debug for successes

		record := traceOne(t, tracer, &buf, "SELECT 1", nil, pgx.TraceQueryEndData{})
		assert.Nil(t, record)
	})

	t.Run("bind arguments only when opted in", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		tracer := logger.NewTracer(log, logger.WithQueryArgs())

		record := traceOne(t, tracer, &buf, "SELECT $1", []any{42}, pgx.TraceQueryEndData{})

		require.NotNil(t, record)
		assert.Contains(t, record, "args")
	})
}
