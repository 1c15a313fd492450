package middleware

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/kitinventory.v1.TransferService/CreateTransfer"}

func TestContextInterceptor(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-user-id", "tech-9", "x-request-id", "req-1"))

	var seen context.Context
	_, err := ContextInterceptor()(ctx, nil, info, func(ctx context.Context, _ interface{}) (interface{}, error) {
		seen = ctx
		return nil, nil
	})
	require.NoError(t, err)

	user, ok := UserIDFromContext(seen)
	assert.True(t, ok)
	assert.Equal(t, "tech-9", user)
	assert.Equal(t, "req-1", seen.Value(RequestIDKey))

	_, ok = UserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestTracingInterceptor(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var traced bool
	_, err := TracingInterceptor()(context.Background(), nil, info, func(ctx context.Context, _ interface{}) (interface{}, error) {
		traced = trace.SpanContextFromContext(ctx).IsValid()
		return nil, status.Error(codes.FailedPrecondition, "insufficient stock")
	})
	require.Error(t, err)
	assert.True(t, traced)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, info.FullMethod, spans[0].Name())
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
}

func TestLoggingInterceptorPassesThrough(t *testing.T) {
	resp, err := LoggingInterceptor(logger.NewNop())(context.Background(), "req", info, func(context.Context, interface{}) (interface{}, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}
