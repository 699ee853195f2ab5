// ABOUTME: Prometheus metrics for heap and collector activity
// ABOUTME: Registered only when the heap is constructed with WithRegisterer

package gc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type heapMetrics struct {
	allocated   prometheus.Counter
	collections prometheus.Counter
	freed       prometheus.Counter
	liveObjects prometheus.Gauge
	pause       prometheus.Histogram
}

func newHeapMetrics(reg prometheus.Registerer) *heapMetrics {
	f := promauto.With(reg)
	return &heapMetrics{
		allocated: f.NewCounter(prometheus.CounterOpts{
			Name: "marksweep_allocated_objects_total",
			Help: "Total number of objects allocated on the heap.",
		}),
		collections: f.NewCounter(prometheus.CounterOpts{
			Name: "marksweep_collections_total",
			Help: "Total number of completed collection cycles.",
		}),
		freed: f.NewCounter(prometheus.CounterOpts{
			Name: "marksweep_freed_objects_total",
			Help: "Total number of objects reclaimed by the collector.",
		}),
		liveObjects: f.NewGauge(prometheus.GaugeOpts{
			Name: "marksweep_live_objects",
			Help: "Current number of live objects on the heap.",
		}),
		pause: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "marksweep_collection_duration_seconds",
			Help:    "Duration of stop-the-world collection cycles.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
	}
}
