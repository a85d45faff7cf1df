// File: metrics.go
// Role: Prometheus counters for protocol events.
// Policy:
//   - A nil *Metrics is valid and records nothing.
//   - A nil registerer gets a private registry.

package dialvalue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts extract/restore protocol events.
type Metrics struct {
	// Extracts counts successful extractions that removed at least one
	// operation.
	Extracts prometheus.Counter
	// Restores counts restore passes over non-empty snapshots.
	Restores prometheus.Counter
	// RestoreFailures counts individual operations that could not be rebuilt.
	RestoreFailures prometheus.Counter
	// Corrupt counts extractions refused because of a sourceless operation.
	Corrupt prometheus.Counter
	// Resolves counts dial value resolutions by path ("fast", "slow", "none").
	Resolves *prometheus.CounterVec
}

// NewMetrics registers the counters on reg. A nil reg uses a private
// registry, which keeps tests and repeated construction from colliding.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Metrics{
		Extracts: f.NewCounter(prometheus.CounterOpts{
			Name: "dialvalue_extract_total",
			Help: "Value operation extractions that removed at least one operation",
		}),
		Restores: f.NewCounter(prometheus.CounterOpts{
			Name: "dialvalue_restore_total",
			Help: "Restore passes over non-empty snapshots",
		}),
		RestoreFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "dialvalue_restore_failures_total",
			Help: "Value operations that could not be rebuilt during restore",
		}),
		Corrupt: f.NewCounter(prometheus.CounterOpts{
			Name: "dialvalue_corrupt_dependency_total",
			Help: "Extractions refused because an operation has no source parameter",
		}),
		Resolves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dialvalue_resolve_total",
			Help: "Dial value resolutions by path",
		}, []string{"path"}),
	}
}

func (m *Metrics) extracted() {
	if m != nil {
		m.Extracts.Inc()
	}
}

func (m *Metrics) restored() {
	if m != nil {
		m.Restores.Inc()
	}
}

func (m *Metrics) restoreFailed() {
	if m != nil {
		m.RestoreFailures.Inc()
	}
}

func (m *Metrics) corrupt() {
	if m != nil {
		m.Corrupt.Inc()
	}
}

func (m *Metrics) resolved(path string) {
	if m != nil {
		m.Resolves.WithLabelValues(path).Inc()
	}
}
