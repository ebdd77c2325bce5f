package xlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xdsa/lib/infra"
)

func TestLogLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LogLevelDebug.String())
	require.Equal(t, "INFO", LogLevelInfo.String())
	require.Equal(t, "WARN", LogLevelWarn.String())
	require.Equal(t, "ERROR", LogLevelError.String())
	require.Equal(t, zapcore.DebugLevel, LogLevelDebug.zapLevel())
	require.Equal(t, zapcore.InfoLevel, LogLevelInfo.zapLevel())
	require.Equal(t, zapcore.WarnLevel, LogLevelWarn.zapLevel())
	require.Equal(t, zapcore.ErrorLevel, LogLevelError.zapLevel())
}

func TestParseLogLevel(t *testing.T) {
	testcases := map[string]logLevel{
		"":        LogLevelDebug,
		"  ":      LogLevelDebug,
		"debug":   LogLevelDebug,
		"info":    LogLevelInfo,
		" Warn ":  LogLevelWarn,
		"ERROR":   LogLevelError,
		"verbose": LogLevelDebug,
	}
	for in, expected := range testcases {
		require.Equal(t, expected, ParseLogLevel(in), in)
	}
}

func TestParseLogEncoder(t *testing.T) {
	enc, ok := ParseLogEncoder("JSON")
	require.True(t, ok)
	require.Equal(t, JSON, enc)
	enc, ok = ParseLogEncoder("text")
	require.True(t, ok)
	require.Equal(t, PlainText, enc)
	_, ok = ParseLogEncoder("yaml")
	require.False(t, ok)
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	res := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		res = append(res, m)
	}
	return res
}

func TestXLogger_LevelAndFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewXLogger(
		WithXLoggerLevel(LogLevelInfo),
		WithXLoggerEncoder(JSON),
		WithXLoggerWriter(zapcore.AddSync(buf)),
	)
	require.Equal(t, "info", logger.Level())

	logger.Debug("hidden")
	logger.Info("shown", zap.Int("nodes", 3))
	logger.Warn("careful")
	logger.Error(errors.New("boom"), "failed")
	require.NoError(t, logger.Sync())

	entries := decodeLines(t, buf)
	require.Len(t, entries, 3)
	require.Equal(t, "shown", entries[0]["msg"])
	require.Equal(t, "INFO", entries[0]["lvl"])
	require.Equal(t, float64(3), entries[0]["nodes"])
	require.Equal(t, "WARN", entries[1]["lvl"])
	require.Equal(t, "boom", entries[2]["error"])
	// The caller skip points to this file instead of xlog.go.
	require.Contains(t, entries[0]["callAt"], "zap_test.go")

	buf.Reset()
	logger.IncreaseLogLevel(zapcore.DebugLevel)
	require.Equal(t, "debug", logger.Level())
	logger.Debug("visible")
	require.Len(t, decodeLines(t, buf), 1)
}

func TestXLogger_ErrorStack(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewXLogger(
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerWriter(zapcore.AddSync(buf)),
	)
	errVertex := errors.New("[graph] vertex out of range")
	err := infra.WrapErrorStackWithMessage(errVertex, "vertex 9")
	logger.ErrorStack(err, "add edge")
	logger.ErrorStack(multierr.Combine(err, errors.New("plain")), "add 2 edges")
	logger.ErrorStack(errors.New("no stack"), "plain error")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 3)
	require.Equal(t, "add edge", entries[0]["msg"])
	require.Equal(t, "vertex 9: [graph] vertex out of range", entries[0]["error"])
	frames, ok := entries[0]["errorStack"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, frames)
	require.Contains(t, frames[0], "zap_test.go")

	// multierr keeps the first ErrorStack reachable by errors.As.
	require.Equal(t, "add 2 edges", entries[1]["msg"])
	require.Contains(t, entries[1], "errorStack")

	require.Equal(t, "no stack", entries[2]["error"])
	require.NotContains(t, entries[2], "errorStack")
}

func TestXLogger_Named(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewXLogger(
		WithXLoggerLevel(LogLevelWarn),
		WithXLoggerWriter(zapcore.AddSync(buf)),
	)
	child := logger.Named("avl")
	child.Info("dropped")
	child.Warn("kept")
	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "avl", entries[0]["component"])

	child.IncreaseLogLevel(zapcore.InfoLevel)
	require.Equal(t, "info", logger.Level())
}

func TestXLogger_MultiWriters(t *testing.T) {
	a, b := &bytes.Buffer{}, &bytes.Buffer{}
	logger := NewXLogger(
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerEncoder(PlainText),
		WithXLoggerWriter(zapcore.AddSync(a)),
		WithXLoggerWriter(zapcore.AddSync(b)),
	)
	logger.Info("both")
	require.Contains(t, a.String(), "both")
	require.Contains(t, b.String(), "both")
}

func TestXLogger_EnvLevel(t *testing.T) {
	t.Setenv("XLOG_LVL", "error")
	buf := &bytes.Buffer{}
	logger := NewXLogger(WithXLoggerWriter(zapcore.AddSync(buf)))
	require.Equal(t, "error", logger.Level())
	logger.Warn("dropped")
	require.Empty(t, buf.String())
}

func TestXLogger_InvalidOptions(t *testing.T) {
	require.Panics(t, func() {
		NewXLogger(WithXLoggerEncoder(_encMax))
	})
	require.Panics(t, func() {
		NewXLogger(WithXLoggerWriter(nil))
	})
	require.NotPanics(t, func() {
		NewXLogger(nil, WithXLoggerLevel(LogLevelError))
	})
}
