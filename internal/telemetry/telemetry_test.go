package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupDisabledIsNoop(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	require.False(t, Enabled())

	shutdown, err := Setup(context.Background())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))

	_, span := Tracer("test").Start(context.Background(), "noop")
	require.False(t, span.SpanContext().IsValid())
	span.End()
}

func TestEnabledFromEnv(t *testing.T) {
	t.Setenv(EndpointEnv, "http://localhost:4318")
	require.True(t, Enabled())
}
