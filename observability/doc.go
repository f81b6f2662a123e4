// Package observability provides OpenTelemetry tracing and metrics
// integration for treekit drivers. Pipeline operators stay pure; drivers wrap
// runs in spans and record throughput via Metrics.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("treeparse"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "pipeline.run")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("treeparse"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("treeparse"))
//	metrics.RecordRun(ctx, "treeparse", "ok", duration)
package observability
