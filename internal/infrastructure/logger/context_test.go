package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext_AddsTraceID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := WithTraceID(context.Background(), "trace-1")

	FromContext(ctx, zap.New(core)).Info("hello")

	assert.Equal(t, "trace-1", logs.All()[0].ContextMap()["traceId"])
}

func TestFromContext_WithoutTraceID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	FromContext(context.Background(), zap.New(core)).Info("hello")

	_, ok := logs.All()[0].ContextMap()["traceId"]
	assert.False(t, ok)
	assert.Equal(t, "", TraceIDFromContext(context.Background()))
}
