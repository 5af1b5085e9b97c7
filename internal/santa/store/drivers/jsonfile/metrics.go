package jsonfile

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	saveOK      = "ok"
	saveFailed  = "failed"
	saveDropped = "dropped"
	// saveUnchanged counts saves skipped because nothing changed.
	saveUnchanged = "unchanged"
)

type storeMetrics struct {
	saves        *prometheus.CounterVec
	saveDuration prometheus.Histogram
	backups      prometheus.Counter
	corrupt      *prometheus.CounterVec
}

// initStoreMetrics builds the store metrics. A nil registerer yields
// working but unregistered collectors.
func initStoreMetrics(reg prometheus.Registerer) *storeMetrics {
	factory := promauto.With(reg)
	return &storeMetrics{
		saves: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "santa_store_saves_total",
				Help: "Save requests by outcome (ok, failed, dropped, unchanged)",
			},
			[]string{"result"},
		),
		saveDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "santa_store_save_duration_seconds",
				Help:    "Time spent backing up and writing all collections",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
		),
		backups: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "santa_store_backups_total",
				Help: "Backup files written before saves",
			},
		),
		corrupt: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "santa_store_corrupt_resources_total",
				Help: "Collections reset to empty at load because they could not be read or parsed",
			},
			[]string{"resource"},
		),
	}
}
