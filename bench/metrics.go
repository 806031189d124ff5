package bench

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/expknap/knapsack"
)

// Solve outcomes used as the "result" label.
const (
	resultOK    = "ok"
	resultError = "error"
)

// Metrics exports solver activity. A nil *Metrics records nothing.
type Metrics struct {
	solves   *prometheus.CounterVec
	nodes    prometheus.Counter
	duration prometheus.Histogram
	coreSize prometheus.Gauge
}

// NewMetrics registers the solver collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "expknap_solves_total",
			Help: "Total number of knapsack solves by result",
		}, []string{"result"}),
		nodes: factory.NewCounter(prometheus.CounterOpts{
			Name: "expknap_branch_nodes_total",
			Help: "Total number of branch-and-bound nodes visited",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "expknap_solve_duration_seconds",
			Help:    "Duration of knapsack solves",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		coreSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "expknap_core_size",
			Help: "Number of sorted core items in the most recent solve",
		}),
	}
}

func (m *Metrics) observe(res knapsack.Result, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.solves.WithLabelValues(resultOK).Inc()
	m.nodes.Add(float64(res.Stats.Iterations))
	m.duration.Observe(elapsed.Seconds())
	m.coreSize.Set(float64(res.Stats.CoreSize))
}

func (m *Metrics) failed() {
	if m == nil {
		return
	}
	m.solves.WithLabelValues(resultError).Inc()
}
