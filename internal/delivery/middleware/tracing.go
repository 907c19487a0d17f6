package middleware

import (
	"fmt"

	deliverycontext "shop/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// HeaderXTraceID carries the trace id of the request back to the client.
const HeaderXTraceID = "X-Trace-Id"

// TracingMiddleware opens a server span per request, continuing any trace
// propagated by the caller.
type TracingMiddleware struct {
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
}

// NewTracingMiddleware creates a tracing middleware from the provider
func NewTracingMiddleware(tp trace.TracerProvider) *TracingMiddleware {
	return &TracingMiddleware{
		tracer:     tp.Tracer("shop/http"),
		propagator: otel.GetTextMapPropagator(),
	}
}

// Handle wraps the request in a span named after the matched route
func (m *TracingMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := m.propagator.Extract(req.Context(), propagation.HeaderCarrier(req.Header))

		route := c.Path()
		if route == "" {
			route = req.URL.Path
		}

		ctx, span := m.tracer.Start(ctx, fmt.Sprintf("%s %s", req.Method, route),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", req.Method),
				attribute.String("http.route", route),
				attribute.String("request_id", deliverycontext.GetRequestIDFromContext(ctx)),
			),
		)
		defer span.End()

		if span.SpanContext().HasTraceID() {
			c.Response().Header().Set(HeaderXTraceID, span.SpanContext().TraceID().String())
		}

		c.SetRequest(req.WithContext(ctx))

		err := next(c)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(attribute.Int("http.response.status_code", c.Response().Status))

		return err
	}
}
