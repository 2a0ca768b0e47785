package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/vault-transport/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. The returned provider should be shut down on exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metric instrument names.
const (
	MetricRequests = "transport.requests"
	MetricFailures = "transport.failures"
	MetricDuration = "transport.request.duration"
	MetricInflight = "transport.requests.inflight"
)

// TransportMetrics holds the instruments recorded around each transport call.
type TransportMetrics struct {
	requests metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
	inflight metric.Int64UpDownCounter
}

// NewTransportMetrics creates the transport instruments on the given meter.
func NewTransportMetrics(meter metric.Meter) (*TransportMetrics, error) {
	requests, err := meter.Int64Counter(MetricRequests,
		metric.WithDescription("Completed transport calls by operation and status class"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRequests, err)
	}

	failures, err := meter.Int64Counter(MetricFailures,
		metric.WithDescription("Transport calls that ended in an error"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricFailures, err)
	}

	duration, err := meter.Float64Histogram(MetricDuration,
		metric.WithDescription("Duration of transport calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricDuration, err)
	}

	inflight, err := meter.Int64UpDownCounter(MetricInflight,
		metric.WithDescription("Transport calls issued but not yet resolved"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s gauge: %w", MetricInflight, err)
	}

	return &TransportMetrics{
		requests: requests,
		failures: failures,
		duration: duration,
		inflight: inflight,
	}, nil
}

// RecordStart marks a call as in flight.
func (m *TransportMetrics) RecordStart(ctx context.Context, operation string) {
	m.inflight.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrOperationName, operation)))
}

// RecordEnd records a finished call. status is the HTTP status code, 0 when
// no response was received; errType is empty on success.
func (m *TransportMetrics) RecordEnd(ctx context.Context, operation, method string, status int, errType string, d time.Duration) {
	op := attribute.String(AttrOperationName, operation)
	m.inflight.Add(ctx, -1, metric.WithAttributes(op))
	m.requests.Add(ctx, 1, metric.WithAttributes(
		op,
		attribute.String(AttrHTTPMethod, method),
		attribute.String("status_class", StatusClass(status)),
	))
	m.duration.Record(ctx, d.Seconds(), metric.WithAttributes(op, attribute.String(AttrHTTPMethod, method)))
	if errType != "" {
		m.failures.Add(ctx, 1, metric.WithAttributes(op, attribute.String(AttrErrorType, errType)))
	}
}

// StatusClass buckets a status code as "2xx", "4xx", ... or "none".
func StatusClass(status int) string {
	if status < 100 || status > 599 {
		return "none"
	}
	return fmt.Sprintf("%dxx", status/100)
}
