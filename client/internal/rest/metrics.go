package rest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tekiro_client",
			Name:      "requests_total",
			Help:      "HTTP requests completed, by method and transport status (\"error\" when no response).",
		},
		[]string{"method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tekiro_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency including body read.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	apiErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tekiro_client",
			Name:      "api_errors_total",
			Help:      "Responses classified as failed, by resulting error status.",
		},
		[]string{"status"},
	)
)
