package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TaskOperations counts service-level task operations by outcome.
	TaskOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dailytasks_task_operations_total",
			Help: "Total number of task operations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// TaskOperationDuration tracks how long each task operation takes.
	TaskOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dailytasks_task_operation_duration_seconds",
			Help:    "Duration of task operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// Observe records one finished operation.
func Observe(operation string, seconds float64, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	TaskOperations.WithLabelValues(operation, status).Inc()
	TaskOperationDuration.WithLabelValues(operation).Observe(seconds)
}
