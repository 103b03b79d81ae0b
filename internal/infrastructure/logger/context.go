package logger

import (
	"context"

	"go.uber.org/zap"
)

type traceIDKey struct{}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// FromContext returns base annotated with the trace id carried by ctx.
func FromContext(ctx context.Context, base *zap.Logger) *zap.Logger {
	if id := TraceIDFromContext(ctx); id != "" {
		return base.With(zap.String("traceId", id))
	}
	return base
}
