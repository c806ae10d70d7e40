// Package observability provides OpenTelemetry tracing and metrics for
// the component loader.
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("component-validator"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("component-validator"))
//	metrics.RecordLoad(ctx, "demo/hello-component", "ok", duration)
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("component-validator"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "component.load")
//	defer span.End()
//
// The Recorder type adapts a meter onto the component.Metrics capability
// that gets injected into every component's state bundle.
package observability
