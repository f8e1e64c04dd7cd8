package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestClampRatio(t *testing.T) {
	require.Equal(t, 0.0, clampRatio(-0.5))
	require.Equal(t, 1.0, clampRatio(3))
	require.Equal(t, 0.25, clampRatio(0.25))
}

func TestNewProvider_ExportsSpans(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tp := newProvider(exp, "media-consumer-test", 1)

	_, span := tp.Tracer("test").Start(context.Background(), "MediaService.WriteBatch")
	span.End()

	// Shutdown у InMemoryExporter очищает память, поэтому только досылаем.
	require.NoError(t, tp.ForceFlush(context.Background()))

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	require.Equal(t, "MediaService.WriteBatch", spans[0].Name)
}

func TestNewProvider_ZeroRatioDropsRootSpans(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	tp := newProvider(exp, "media-consumer-test", 0)

	_, span := tp.Tracer("test").Start(context.Background(), "dropped")
	span.End()

	require.NoError(t, tp.ForceFlush(context.Background()))
	require.Empty(t, exp.GetSpans())
}
