// Package health reports whether configuration sources can be collected.
//
// A SourceChecker runs a secretfile.Collector and turns the outcome into a
// Result: Healthy with the collected top-level keys, Degraded when the
// source contributed nothing, or Unhealthy with the collection error.
// Secret values never appear in results.
//
// # Aggregation
//
// An Aggregator runs registered checkers concurrently under one deadline
// and folds their statuses into an overall Status:
//
//	agg := health.NewAggregator()
//	_ = agg.Register(health.NewSourceChecker("secrets", src))
//	results := agg.CheckAll(ctx)
//	overall := health.OverallStatus(results)
//
// # HTTP Endpoints
//
//	mux := http.NewServeMux()
//	health.RegisterHandlers(mux, agg)
//
// registers /healthz (liveness), /readyz (readiness) and /health (JSON
// detail).
package health
