package pubfolio

import (
	"github.com/prometheus/client_golang/prometheus"
)

// catalogMetrics is nil-safe: an uninstrumented Catalog simply records
// nothing.
type catalogMetrics struct {
	builds  prometheus.Counter
	skips   *prometheus.CounterVec
	entries prometheus.Gauge
}

// Instrument registers catalog metrics on reg.
func (c *Catalog) Instrument(reg prometheus.Registerer) error {
	m := &catalogMetrics{
		builds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pubfolio",
			Subsystem: "catalog",
			Name:      "builds_total",
			Help:      "Number of catalog builds.",
		}),
		skips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pubfolio",
			Subsystem: "catalog",
			Name:      "skipped_documents_total",
			Help:      "Documents left out of a catalog build, by reason.",
		}, []string{"reason"}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pubfolio",
			Subsystem: "catalog",
			Name:      "posts",
			Help:      "Number of posts in the last catalog build.",
		}),
	}
	for _, col := range []prometheus.Collector{m.builds, m.skips, m.entries} {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	c.metrics = m
	return nil
}

func (m *catalogMetrics) skipped(reason string) {
	if m == nil {
		return
	}
	m.skips.WithLabelValues(reason).Inc()
}

func (m *catalogMetrics) built(n int) {
	if m == nil {
		return
	}
	m.builds.Inc()
	m.entries.Set(float64(n))
}
