package cronexpr

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vnykmshr/cronplan/pkg/metrics"
)

// Operation label values reported by MetricsBuilder.
const (
	opEveryXMinutes = "every_x_minutes"
	opEveryXHours   = "every_x_hours"
	opDailyAt       = "daily_at"
	opWeeklyAt      = "weekly_at"
	opMonthlyAt     = "monthly_at"
	opYearlyAt      = "yearly_at"
	opWeekdaysAt    = "weekdays_at"
	opWeekendsAt    = "weekends_at"
)

// MetricsBuilder wraps a Builder with Prometheus metrics collection.
type MetricsBuilder struct {
	builder  Builder
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a new expression builder with metrics enabled.
func NewWithMetrics(name string) *MetricsBuilder {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(name, config)
}

// NewWithConfigAndMetrics creates a new expression builder with custom metrics configuration.
func NewWithConfigAndMetrics(name string, metricsConfig metrics.Config) *MetricsBuilder {
	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	return &MetricsBuilder{
		builder:  New(),
		name:     name,
		registry: registry,
		enabled:  metricsConfig.Enabled,
	}
}

// record updates the built/rejected counters for one operation.
func (mb *MetricsBuilder) record(operation string, err error) {
	if !mb.enabled {
		return
	}
	if err != nil {
		mb.registry.ExpressionsRejected.WithLabelValues(operation, mb.name).Inc()
		return
	}
	mb.registry.ExpressionsBuilt.WithLabelValues(operation, mb.name).Inc()
}

// EveryXMinutes builds a step expression firing every interval minutes.
func (mb *MetricsBuilder) EveryXMinutes(interval int) (string, error) {
	expr, err := mb.builder.EveryXMinutes(interval)
	mb.record(opEveryXMinutes, err)
	return expr, err
}

// EveryXHours builds a step expression firing every interval hours.
func (mb *MetricsBuilder) EveryXHours(interval, minute int) (string, error) {
	expr, err := mb.builder.EveryXHours(interval, minute)
	mb.record(opEveryXHours, err)
	return expr, err
}

// DailyAt builds a once-a-day expression.
func (mb *MetricsBuilder) DailyAt(hour, minute int) (string, error) {
	expr, err := mb.builder.DailyAt(hour, minute)
	mb.record(opDailyAt, err)
	return expr, err
}

// WeeklyAt builds a once-a-week expression.
func (mb *MetricsBuilder) WeeklyAt(day time.Weekday, hour, minute int) (string, error) {
	expr, err := mb.builder.WeeklyAt(day, hour, minute)
	mb.record(opWeeklyAt, err)
	return expr, err
}

// MonthlyAt builds a once-a-month expression.
func (mb *MetricsBuilder) MonthlyAt(dayOfMonth, hour, minute int) (string, error) {
	expr, err := mb.builder.MonthlyAt(dayOfMonth, hour, minute)
	mb.record(opMonthlyAt, err)
	return expr, err
}

// YearlyAt builds a once-a-year expression.
func (mb *MetricsBuilder) YearlyAt(month time.Month, dayOfMonth, hour, minute int) (string, error) {
	expr, err := mb.builder.YearlyAt(month, dayOfMonth, hour, minute)
	mb.record(opYearlyAt, err)
	return expr, err
}

// WeekdaysAt builds a Monday-through-Friday expression.
func (mb *MetricsBuilder) WeekdaysAt(hour, minute int) (string, error) {
	expr, err := mb.builder.WeekdaysAt(hour, minute)
	mb.record(opWeekdaysAt, err)
	return expr, err
}

// WeekendsAt builds a Saturday-and-Sunday expression.
func (mb *MetricsBuilder) WeekendsAt(hour, minute int) (string, error) {
	expr, err := mb.builder.WeekendsAt(hour, minute)
	mb.record(opWeekendsAt, err)
	return expr, err
}

// EnableMetrics enables metrics collection.
func (mb *MetricsBuilder) EnableMetrics(config metrics.Config) error {
	mb.enabled = config.Enabled

	if config.Registry != nil {
		mb.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (mb *MetricsBuilder) DisableMetrics() {
	mb.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (mb *MetricsBuilder) MetricsEnabled() bool {
	return mb.enabled
}
