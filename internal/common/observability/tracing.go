// internal/common/observability/tracing.go
package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"skillpath-workers/internal/common/config"
)

const instrumentationName = "skillpath-workers"

// Tracing owns the global tracer provider. A nil *Tracing is valid.
type Tracing struct {
	provider *sdktrace.TracerProvider
}

// NewTracing exports spans to Jaeger when cfg.Enabled, otherwise it returns nil.
func NewTracing(serviceName string, cfg config.TracingConfig) (*Tracing, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.JaegerEndpoint)))
	if err != nil {
		return nil, err
	}
	return newTracing(serviceName, cfg.SampleRatio, sdktrace.WithBatcher(exporter)), nil
}

// NewTracingWithExporter is used by tests to capture spans in memory.
func NewTracingWithExporter(serviceName string, exporter sdktrace.SpanExporter) *Tracing {
	return newTracing(serviceName, 1, sdktrace.WithSyncer(exporter))
}

func newTracing(serviceName string, ratio float64, opt sdktrace.TracerProviderOption) *Tracing {
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	provider := sdktrace.NewTracerProvider(
		opt,
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return &Tracing{provider: provider}
}

// StartSpan opens a span on the global tracer provider. Without tracing
// configured the span is a no-op. End it with span.End().
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, name, trace.WithAttributes(attrs...))
}

func (t *Tracing) Shutdown(ctx context.Context) {
	if t == nil || t.provider == nil {
		return
	}
	_ = t.provider.Shutdown(ctx)
}
