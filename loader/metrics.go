package loader

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wasmcore",
		Subsystem: "loader",
		Name:      "loads_total",
		Help:      "Module load attempts by source kind and outcome.",
	}, []string{"kind", "status"})

	loadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "wasmcore",
		Subsystem: "loader",
		Name:      "load_duration_seconds",
		Help:      "Time from Load call to settled result.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
	}, []string{"kind"})

	fetchCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "wasmcore",
		Subsystem: "loader",
		Name:      "fetch_cache_hits_total",
		Help:      "URL fetches served from the in-memory byte cache.",
	})
)

func observeLoad(kind SourceKind, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	loadsTotal.WithLabelValues(kind.String(), status).Inc()
	loadDuration.WithLabelValues(kind.String()).Observe(elapsed.Seconds())
}
