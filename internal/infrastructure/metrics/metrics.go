package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the rollup service.
type Metrics struct {
	// Rollup metrics
	RollupsComputed prometheus.Counter
	RollupDuration  prometheus.Histogram
	EventsExtracted prometheus.Histogram

	// Memo cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// Snapshot metrics
	SnapshotsIngested    prometheus.Counter
	SnapshotLoadDuration prometheus.Histogram
	SnapshotRecords      prometheus.Histogram
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RollupsComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "millbooks_rollups_computed_total",
			Help: "Total number of rollups computed from a snapshot",
		}),
		RollupDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "millbooks_rollup_duration_seconds",
			Help:    "Duration of extract plus aggregate per rollup",
			Buckets: prometheus.DefBuckets,
		}),
		EventsExtracted: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "millbooks_events_extracted",
			Help:    "Ledger events extracted per rollup",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		}),

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "millbooks_rollup_cache_hits_total",
			Help: "Total rollup memo cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "millbooks_rollup_cache_misses_total",
			Help: "Total rollup memo cache misses",
		}),

		SnapshotsIngested: promauto.NewCounter(prometheus.CounterOpts{
			Name: "millbooks_snapshots_ingested_total",
			Help: "Total snapshots stored",
		}),
		SnapshotLoadDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "millbooks_snapshot_load_duration_seconds",
			Help:    "Duration of snapshot loads from storage",
			Buckets: prometheus.DefBuckets,
		}),
		SnapshotRecords: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "millbooks_snapshot_records",
			Help:    "Top-level records per stored snapshot",
			Buckets: []float64{1, 10, 100, 1000, 10000},
		}),
	}
}
