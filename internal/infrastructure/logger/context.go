package logger

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

func ContextWithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return L()
	}
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return L()
}

func WithOperation(ctx context.Context, operation string) context.Context {
	logger := FromContext(ctx).With(
		"operation", operation,
		"op_id", generateShortID(),
	)
	return ContextWithLogger(ctx, logger)
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	logger := FromContext(ctx).With("trace_id", traceID)
	return ContextWithLogger(ctx, logger)
}

// NewTraceID returns a fresh request identifier.
func NewTraceID() string {
	return uuid.NewString()
}

func generateShortID() string {
	id := uuid.New()
	return id.String()[:8]
}
