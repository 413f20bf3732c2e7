package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/segmentbench/internal/config"
)

func TestQueryLogger_ForwardsToSlog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	queryLogger(logger).Log(context.Background(), tracelog.LogLevelInfo, "Query", map[string]any{
		"sql": "SELECT 1",
	})

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=Query")
	assert.Contains(t, out, `sql="SELECT 1"`)
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   tracelog.LogLevel
		want slog.Level
	}{
		{tracelog.LogLevelError, slog.LevelError},
		{tracelog.LogLevelWarn, slog.LevelWarn},
		{tracelog.LogLevelInfo, slog.LevelInfo},
		{tracelog.LogLevelDebug, slog.LevelDebug},
		{tracelog.LogLevelTrace, slog.LevelDebug},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slogLevel(tt.in), "tracelog level %v", tt.in)
	}
}

func TestNewPool_InvalidDSN(t *testing.T) {
	t.Parallel()

	_, err := NewPool(context.Background(), config.DatabaseConfig{DSN: "postgres://%zz"}, slog.Default())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse database DSN"), err.Error())
}
