package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/abhisek/lecturely/internal/logger"
)

func TestInit_OffIsNoop(t *testing.T) {
	shutdown, err := Init(context.Background(), logger.Nop(), Config{Mode: "off"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInit_StdoutExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := Init(context.Background(), logger.Nop(), Config{
		Mode:        "stdout",
		ServiceName: "lecturely-test",
		Version:     "dev",
		Writer:      &buf,
	})
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "generate-modules")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "generate-modules")
	assert.Contains(t, buf.String(), "lecturely-test")
}
