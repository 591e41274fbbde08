// Package collector records what the build pass and the canonical table do.
//
// The build pass and the query layer report through the Recorder interface.
// Two implementations ship with the package:
//
//   - Metrics: Prometheus collectors registered against a caller-supplied
//     prometheus.Registerer.
//   - Noop: discards every event. Used when metrics are disabled.
//
// # Metrics
//
// Build metrics:
//   - quantity_canon_build_duration_seconds{outcome}: one observation per
//     build pass, outcome "success" or "error"
//   - quantity_canon_declarations_total{kind}: declarations built, by
//     dimension, constant, quantity, prefix and unit
//
// Query metrics:
//   - quantity_canon_queries_total{query,result}: table queries. For
//     convertibility the result is the classification (no, cast, explicit,
//     yes); other queries report "ok" or "error".
//   - quantity_canon_cache_lookups_total{result}: convertibility memo cache
//     hits and misses
//
// # Usage Example
//
//	reg := prometheus.NewRegistry()
//	metrics, err := collector.NewMetrics(reg)
//	if err != nil {
//		return err
//	}
//	table, err := core.Build(ctx, catalog, core.WithMetrics(metrics))
//
// Metrics are safe for concurrent use, so one Metrics value can be shared by
// every reader of a table.
package collector
