package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey string

const (
	ContextKeyTraceID  contextKey = "trace_id"
	ContextKeyUploadID contextKey = "upload_id"
	ContextKeyClientID contextKey = "client_id"
)

type Logger struct {
	zap *zap.Logger
}

func New(level string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(ParseLevel(level))

	zapLogger, err := config.Build()
	if err != nil {
		return NewNop()
	}
	return &Logger{zap: zapLogger}
}

// NewWithCore wraps an existing zap core, e.g. an observer core in tests.
func NewWithCore(core zapcore.Core) *Logger {
	return &Logger{zap: zap.New(core)}
}

func NewNop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, traceID)
}

func WithUploadID(ctx context.Context, uploadID string) context.Context {
	return context.WithValue(ctx, ContextKeyUploadID, uploadID)
}

func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, ContextKeyClientID, clientID)
}

func GetTraceID(ctx context.Context) string {
	return stringValue(ctx, ContextKeyTraceID)
}

func GetUploadID(ctx context.Context) string {
	return stringValue(ctx, ContextKeyUploadID)
}

func GetClientID(ctx context.Context) string {
	return stringValue(ctx, ContextKeyClientID)
}

func stringValue(ctx context.Context, key contextKey) string {
	if v := ctx.Value(key); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func (l *Logger) buildFields(ctx context.Context, fields ...interface{}) []zap.Field {
	zapFields := []zap.Field{}

	for _, key := range []contextKey{ContextKeyTraceID, ContextKeyUploadID, ContextKeyClientID} {
		if v := stringValue(ctx, key); v != "" {
			zapFields = append(zapFields, zap.String(string(key), v))
		}
	}

	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			key, ok := fields[i].(string)
			if !ok {
				continue
			}
			value := fields[i+1]
			if err, isErr := value.(error); isErr {
				zapFields = append(zapFields, zap.NamedError(key, err))
				continue
			}
			zapFields = append(zapFields, zap.Any(key, value))
		}
	}

	return zapFields
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Debug(msg, l.buildFields(ctx, fields...)...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Info(msg, l.buildFields(ctx, fields...)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Warn(msg, l.buildFields(ctx, fields...)...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Error(msg, l.buildFields(ctx, fields...)...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Fatal(msg, l.buildFields(ctx, fields...)...)
}

func (l *Logger) Sync() error {
	return l.zap.Sync()
}
