package httpadapter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"svw.info/sudokit/internal/ports"
)

// Metrics tracks solve outcomes for the /metrics endpoint.
type Metrics struct {
	solves   *prometheus.CounterVec
	duration prometheus.Histogram
	nodes    prometheus.Histogram
}

// NewMetrics registers the solve metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sudokit",
			Name:      "solves_total",
			Help:      "Solve requests by outcome.",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sudokit",
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock time per solve request.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		nodes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sudokit",
			Name:      "solve_search_nodes",
			Help:      "Search nodes visited per solve request.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}),
	}
}

func (m *Metrics) observeSolve(st ports.Stats, err error) {
	if m == nil {
		return
	}
	outcome := "solved"
	if err != nil {
		outcome = "failed"
	}
	m.solves.WithLabelValues(outcome).Inc()
	m.duration.Observe(st.Duration.Seconds())
	m.nodes.Observe(float64(st.Nodes))
}
