package query

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tekiro_client",
		Name:      "query_cache_hits_total",
		Help:      "Fetches served from the query cache.",
	})

	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tekiro_client",
		Name:      "query_cache_misses_total",
		Help:      "Fetches that had to call the backend.",
	})

	retriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tekiro_client",
		Name:      "query_retries_total",
		Help:      "Fetch attempts repeated after a transient failure.",
	})
)
