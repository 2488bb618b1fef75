// internal/common/observability/metrics.go
package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Instruments come from the global meter provider; they start recording once
// New installs the prometheus-backed provider.
var (
	meter          = otel.Meter(instrumentationName)
	jobCounter, _  = meter.Int64Counter("jobs.processed", otelmetric.WithDescription("Number of jobs processed"))
	jobDuration, _ = meter.Float64Histogram("jobs.duration",
		otelmetric.WithDescription("Job processing duration"),
		otelmetric.WithUnit("ms"),
	)
)

type Observability struct {
	meterProvider *metric.MeterProvider
	tracing       *Tracing
}

// New registers the otel prometheus exporter with the default prometheus
// registry so job metrics appear on /metrics. tracing may be nil.
func New(tracing *Tracing) (*Observability, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, err
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	return &Observability{meterProvider: provider, tracing: tracing}, nil
}

// RecordJob counts one processed job and its duration.
func RecordJob(ctx context.Context, taskType string, d time.Duration, status string) {
	attrs := otelmetric.WithAttributes(
		attribute.String("task_type", taskType),
		attribute.String("status", status),
	)
	if jobCounter != nil {
		jobCounter.Add(ctx, 1, attrs)
	}
	if jobDuration != nil {
		jobDuration.Record(ctx, float64(d.Milliseconds()), attrs)
	}
}

func (o *Observability) Shutdown(ctx context.Context) {
	if o == nil {
		return
	}
	if o.meterProvider != nil {
		_ = o.meterProvider.Shutdown(ctx)
	}
	o.tracing.Shutdown(ctx)
}
