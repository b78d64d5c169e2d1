package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EngineOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cfr_engine_operation_duration_seconds",
			Help:    "Duration of engine queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	EngineOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cfr_engine_operation_errors_total",
			Help: "Total number of engine queries that returned an error",
		},
		[]string{"operation"},
	)
)

func observe(operation string, start time.Time, err error) {
	EngineOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		EngineOperationErrors.WithLabelValues(operation).Inc()
	}
}
