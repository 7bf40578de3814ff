// Package metrics defines the Prometheus metrics exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP surface metrics
var (
	// ConfigReadsTotal tracks read requests by endpoint (list/detail) and outcome
	ConfigReadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confgate_config_reads_total",
			Help: "Config read requests by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	// AuthFailuresTotal tracks requests rejected by the key check
	AuthFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "confgate_auth_failures_total",
			Help: "Requests rejected due to a missing or mismatched key",
		},
	)
)

// Document store metrics
var (
	// MongoOpDuration tracks MongoDB operation latency in seconds
	MongoOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "confgate_mongo_operation_duration_seconds",
			Help:    "MongoDB operation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	// MongoErrorsTotal tracks failed MongoDB operations
	MongoErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confgate_mongo_errors_total",
			Help: "Failed MongoDB operations by operation",
		},
		[]string{"operation"},
	)
)
