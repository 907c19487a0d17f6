package tracing

import (
	"io"
	"log/slog"
	"testing"

	"shop/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx/fxtest"
)

func TestSampleRatio(t *testing.T) {
	assert.InDelta(t, defaultSampleRatio, sampleRatio(0), 0.0001)
	assert.InDelta(t, 0.0, sampleRatio(-1), 0.0001)
	assert.InDelta(t, 1.0, sampleRatio(3), 0.0001)
	assert.InDelta(t, 0.5, sampleRatio(0.5), 0.0001)
}

func TestNewTracerProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("disabled", func(t *testing.T) {
		tp, err := NewTracerProvider(Params{
			Lifecycle: fxtest.NewLifecycle(t),
			Config:    &config.Config{},
			Logger:    logger,
		})
		require.NoError(t, err)
		assert.IsType(t, noop.TracerProvider{}, tp)
	})

	t.Run("stdout", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		tp, err := NewTracerProvider(Params{
			Lifecycle: lc,
			Config:    &config.Config{Tracing: &config.TracingConfig{Enabled: true, Exporter: "stdout"}},
			Logger:    logger,
		})
		require.NoError(t, err)
		require.NotNil(t, NewTracer(tp))
		lc.RequireStart().RequireStop()
	})

	t.Run("unknown exporter", func(t *testing.T) {
		_, err := NewTracerProvider(Params{
			Lifecycle: fxtest.NewLifecycle(t),
			Config:    &config.Config{Tracing: &config.TracingConfig{Enabled: true, Exporter: "zipkin"}},
			Logger:    logger,
		})
		assert.Error(t, err)
	})
}
