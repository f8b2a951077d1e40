package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInitWithoutEndpointIsNoop(t *testing.T) {
	prev := otel.GetTracerProvider()

	shutdown, err := Init(context.Background(), "  ", "intake-test")
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.Equal(t, prev, otel.GetTracerProvider())
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitInstallsSDKProvider(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	// The gRPC client connects lazily, so no collector is needed here.
	shutdown, err := Init(context.Background(), "127.0.0.1:4317", "intake-test")
	require.NoError(t, err)

	_, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = shutdown(ctx)
}
