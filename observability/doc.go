// Package observability wires OpenTelemetry tracing and metrics for the
// Vault transport.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("vault-client"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("vault-client"))
//	defer mp.Shutdown(ctx)
//
//	m, err := observability.NewTransportMetrics(observability.Meter("vault-client"))
//
// transport.Instrument uses both to wrap a Transport.
package observability
