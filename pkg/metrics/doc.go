// Package metrics provides Prometheus instrumentation for cronplan components.
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructor:
//
//	b := cronexpr.NewWithMetrics("report_schedules")
//	expr, err := b.DailyAt(2, 0)
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
//	b := cronexpr.NewWithConfigAndMetrics("report_schedules", config)
//
// # Available Metrics
//
//   - cronplan_cronexpr_expressions_built_total: Expressions built successfully
//   - cronplan_cronexpr_expressions_rejected_total: Builds rejected for invalid arguments
//
// Both counters carry an "operation" label (e.g. "daily_at",
// "every_x_minutes") and a "builder_name" label with the user-provided
// instance name.
//
// # Runtime Control
//
// Components implementing the Instrumentable interface support runtime control:
//
//	b := cronexpr.NewWithMetrics("report_schedules")
//	b.DisableMetrics()            // Stop collecting metrics
//	b.EnableMetrics(config)       // Re-enable with new config
//	enabled := b.MetricsEnabled() // Check current state
package metrics
