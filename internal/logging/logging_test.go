package logging

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	logger.Info("test message",
		slog.String("component", "test"),
		slog.Int("count", 42))

	output := buf.String()
	assert.Contains(t, output, `"level":"INFO"`)
	assert.Contains(t, output, `"msg":"test message"`)
	assert.Contains(t, output, `"component":"test"`)
	assert.Contains(t, output, `"count":42`)
}

func TestNewStructuredLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelWarn)

	logger.Info("info message")
	logger.Warn("warning message")

	output := buf.String()
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warning message")
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogError(logger, "reload failed", errors.New("connection refused"),
		slog.String("component", "service"))

	output := buf.String()
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.Contains(t, output, `"msg":"reload failed"`)
	assert.Contains(t, output, `"error":"connection refused"`)
	assert.Contains(t, output, `"component":"service"`)

	// nil logger is a no-op
	LogError(nil, "ignored", errors.New("ignored"))
}

func TestLogOperationSkipsZeroDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogOperation(logger, "status_reload",
		slog.Int("lines", 12),
		slog.Duration("duration", 0))

	output := buf.String()
	assert.Contains(t, output, `"msg":"status_reload"`)
	assert.Contains(t, output, `"lines":12`)
	assert.NotContains(t, output, `"duration"`)
}

type errCloser struct{}

func (errCloser) Close() error { return errors.New("close failed") }

func TestSafeClose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	SafeClose(errCloser{}, logger, "http_response_body")
	assert.Contains(t, buf.String(), `"resource":"http_response_body"`)

	SafeClose(nil, logger, "nothing")
	assert.NotContains(t, buf.String(), "nothing")
}

func TestContextRoundTrip(t *testing.T) {
	logger := NewStructuredLogger(io.Discard, slog.LevelInfo)
	ctx := WithLogger(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()), "missing logger falls back to default")
}
