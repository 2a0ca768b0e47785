package transport

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/vault-transport/httpclient"
	"github.com/kbukum/vault-transport/logger"
	"github.com/kbukum/vault-transport/observability"
)

// InstrumentOption configures Instrument.
type InstrumentOption func(*instrumentConfig)

type instrumentConfig struct {
	tracerProvider trace.TracerProvider
	meter          metric.Meter
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) InstrumentOption {
	return func(c *instrumentConfig) { c.tracerProvider = tp }
}

// WithMeter overrides the global meter.
func WithMeter(m metric.Meter) InstrumentOption {
	return func(c *instrumentConfig) { c.meter = m }
}

// instrumented records a span and metrics around every call of next.
type instrumented struct {
	next    Transport
	service string
	tracer  trace.Tracer
	metrics *observability.TransportMetrics
}

// Instrument wraps next with OpenTelemetry tracing and metrics. Results pass
// through untouched. Spans of asynchronous calls end when the call resolves.
func Instrument(next Transport, serviceName string, opts ...InstrumentOption) Transport {
	cfg := &instrumentConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.meter == nil {
		cfg.meter = observability.Meter(observability.TracerName)
	}

	t := &instrumented{
		next:    next,
		service: serviceName,
		tracer:  observability.Tracer(cfg.tracerProvider),
	}
	m, err := observability.NewTransportMetrics(cfg.meter)
	if err != nil {
		logger.Warn("transport metrics disabled", logger.Fields(logger.FieldError, err.Error()))
	} else {
		t.metrics = m
	}
	return t
}

func (t *instrumented) Send(ctx context.Context, req httpclient.Request, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	ctx, end := t.start(ctx, "send", req.Method, req.Path)
	resp, err := t.next.Send(ctx, req, opts...)
	end(resp, err)
	return resp, err
}

func (t *instrumented) SendAsync(ctx context.Context, req httpclient.Request, opts ...httpclient.RequestOption) *Pending {
	ctx, end := t.start(ctx, "send_async", req.Method, req.Path)
	return t.observe(t.next.SendAsync(ctx, req, opts...), end)
}

func (t *instrumented) Request(ctx context.Context, method, uri string, opts ...httpclient.RequestOption) (*httpclient.Response, error) {
	ctx, end := t.start(ctx, "request", method, uri)
	resp, err := t.next.Request(ctx, method, uri, opts...)
	end(resp, err)
	return resp, err
}

func (t *instrumented) RequestAsync(ctx context.Context, method, uri string, opts ...httpclient.RequestOption) *Pending {
	ctx, end := t.start(ctx, "request_async", method, uri)
	return t.observe(t.next.RequestAsync(ctx, method, uri, opts...), end)
}

func (t *instrumented) Config() map[string]any {
	return t.next.Config()
}

func (t *instrumented) ConfigValue(name string) (any, bool) {
	return t.next.ConfigValue(name)
}

// observe ends the span once p resolves.
func (t *instrumented) observe(p *Pending, end func(*httpclient.Response, error)) *Pending {
	go func() {
		resp, err := p.Wait(context.Background())
		end(resp, err)
	}()
	return p
}

func (t *instrumented) start(ctx context.Context, operation, method, uri string) (context.Context, func(*httpclient.Response, error)) {
	ctx, span := t.tracer.Start(ctx, t.service+"."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(observability.AttrServiceName, t.service),
			attribute.String(observability.AttrOperationName, operation),
			attribute.String(observability.AttrHTTPMethod, method),
			attribute.String(observability.AttrURL, uri),
		),
	)
	if t.metrics != nil {
		t.metrics.RecordStart(ctx, operation)
	}
	started := time.Now()

	return ctx, func(resp *httpclient.Response, err error) {
		status := 0
		if resp != nil {
			status = resp.StatusCode
			span.SetAttributes(attribute.Int(observability.AttrStatusCode, status))
		}
		errType := ""
		if err != nil {
			errType = errorType(err)
			span.SetAttributes(attribute.String(observability.AttrErrorType, errType))
			observability.SetSpanError(span, err)
		}
		if t.metrics != nil {
			t.metrics.RecordEnd(ctx, operation, method, status, errType, time.Since(started))
		}
		span.End()
	}
}

func errorType(err error) string {
	if IsTransportError(err) {
		return "transport"
	}
	return "other"
}
