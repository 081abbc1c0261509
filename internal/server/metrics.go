package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the counters and histograms the server exposes via
// /metrics, grounded on the example pack's RegisterBadgerMetrics/
// metrics.Server pattern (promauto-free here since this package only
// ever registers once, at construction, matching bart's own preference
// for explicit setup over magic globals).
type metrics struct {
	registry       *prometheus.Registry
	inserts        prometheus.Counter
	deletes        prometheus.Counter
	lookupDuration prometheus.Histogram
}

// newMetrics registers into a fresh, private registry rather than the
// global default one, so that constructing more than one Server (as the
// tests do) never collides on metric names.
func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	m := &metrics{
		registry: registry,
		inserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ebtree",
			Name:      "inserts_total",
			Help:      "Total number of entries inserted.",
		}),
		deletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ebtree",
			Name:      "deletes_total",
			Help:      "Total number of entries deleted.",
		}),
		lookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ebtree",
			Name:      "lookup_duration_seconds",
			Help:      "Lookup and range-lookup latency.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	registry.MustRegister(m.inserts, m.deletes, m.lookupDuration)
	return m
}

type lookupTimer struct {
	hist  prometheus.Histogram
	start time.Time
}

func (m *metrics) startLookup() lookupTimer {
	return lookupTimer{hist: m.lookupDuration, start: time.Now()}
}

func (t lookupTimer) observe() {
	t.hist.Observe(time.Since(t.start).Seconds())
}
