// Package metrics provides Prometheus instrumentation for cronplan components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for cronplan components.
type Registry struct {
	// Expression Building Metrics
	ExpressionsBuilt    *prometheus.CounterVec
	ExpressionsRejected *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by cronplan components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		ExpressionsBuilt: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cronplan",
				Subsystem: "cronexpr",
				Name:      "expressions_built_total",
				Help:      "Total number of cron expressions built successfully",
			},
			[]string{"operation", "builder_name"},
		),

		ExpressionsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cronplan",
				Subsystem: "cronexpr",
				Name:      "expressions_rejected_total",
				Help:      "Total number of expression builds rejected for invalid arguments",
			},
			[]string{"operation", "builder_name"},
		),
	}
}
