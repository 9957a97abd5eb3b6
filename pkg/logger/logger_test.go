package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestLogger_ContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewWithCore(core)

	ctx := WithTraceID(context.Background(), "trace-1")
	ctx = WithUploadID(ctx, "upload-1")

	log.Info(ctx, "line processed", "line", 3, "error", errors.New("boom"), 42, "ignored")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "trace-1", fields["trace_id"])
	assert.Equal(t, "upload-1", fields["upload_id"])
	assert.EqualValues(t, 3, fields["line"])
	assert.Equal(t, "boom", fields["error"])
	assert.NotContains(t, fields, "client_id")
}

func TestContextGetters_Empty(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))
	assert.Empty(t, GetUploadID(ctx))
	assert.Empty(t, GetClientID(ctx))
	assert.Equal(t, "client-9", GetClientID(WithClientID(ctx, "client-9")))
}
