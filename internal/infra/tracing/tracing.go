// Package tracing configures the OpenTelemetry tracer provider.
package tracing

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"shop/config"
	"shop/internal/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
)

const (
	defaultServiceName = "shop"
	defaultSampleRatio = 0.1

	exporterStdout = "stdout"
	exporterOTLP   = "otlp"
)

// Params defines the dependencies of the tracer provider, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewTracerProvider builds the process-wide tracer provider. Tracing that is
// disabled yields a no-op provider.
func NewTracerProvider(params Params) (trace.TracerProvider, error) {
	cfg := params.Config.Tracing
	if cfg == nil || !cfg.Enabled {
		return noop.NewTracerProvider(), nil
	}

	ctx := context.Background()
	exporter, err := buildExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}

	serviceName := strings.TrimSpace(params.Config.Env.ServiceName)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		attribute.String("service.name", serviceName),
		attribute.String("deployment.environment", params.Config.Env.Env),
	))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build trace resource")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio(cfg.SampleRatio)))),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(tp.Shutdown(ctx))
		},
	})

	params.Logger.Info("Tracing initialized",
		slog.String("service", serviceName),
		slog.String("exporter", cfg.Exporter),
	)

	return tp, nil
}

func buildExporter(ctx context.Context, cfg *config.TracingConfig) (sdktrace.SpanExporter, error) {
	switch strings.ToLower(cfg.Exporter) {
	case "", exporterStdout:
		exp, err := stdouttrace.New()
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return exp, nil
	case exporterOTLP:
		opts := []otlptracehttp.Option{}
		if cfg.Endpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpoint(cfg.Endpoint))
		}
		if cfg.Insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		exp, err := otlptracehttp.New(ctx, opts...)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return exp, nil
	default:
		return nil, errors.Errorf("unknown trace exporter: %s", cfg.Exporter)
	}
}

// sampleRatio clamps the configured ratio into [0, 1]; zero means the default.
func sampleRatio(ratio float64) float64 {
	switch {
	case ratio == 0:
		return defaultSampleRatio
	case ratio < 0:
		return 0
	case ratio > 1:
		return 1
	default:
		return ratio
	}
}

// NewTracer returns the tracer used by the use cases.
func NewTracer(tp trace.TracerProvider) trace.Tracer {
	return tp.Tracer("shop/usecase")
}

// Module provides the tracer provider and the use case tracer
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTracerProvider, NewTracer),
)
