package telemetry

import (
	"context"
	"ctchen222/tictactoe/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

func TestInitOtel_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := InitOtel(context.Background(), config.Telemetry{ServiceName: "tic-tac-toe"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewResource(t *testing.T) {
	res, err := newResource("ttt-test")
	require.NoError(t, err)

	v, ok := res.Set().Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, attribute.StringValue("ttt-test"), v)
}
