package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce          sync.Once
	requestsTotal         *prometheus.CounterVec
	latencySeconds        *prometheus.HistogramVec
	errorsTotal           *prometheus.CounterVec
	syncRunSeconds        prometheus.Histogram
	syncActivitiesStored  *prometheus.CounterVec
	syncFetchFailures     *prometheus.CounterVec
	syncStudentsProcessed prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used by the monitor.
func RegisterMetrics() {
	registerOnce.Do(func() {
		requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "monitor_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		latencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "monitor_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		errorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "monitor_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		syncRunSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "monitor_sync_run_seconds",
			Help:    "Duration of full sync passes over the roster.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		})

		syncActivitiesStored = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "monitor_sync_activities_stored_total",
			Help: "Number of activities stored per source during sync runs.",
		}, []string{"source"})

		syncFetchFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "monitor_sync_fetch_failures_total",
			Help: "Number of failed platform fetches during sync runs.",
		}, []string{"source"})

		syncStudentsProcessed = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "monitor_sync_students_processed_total",
			Help: "Number of students processed across all sync runs.",
		})

		prometheus.MustRegister(
			requestsTotal,
			latencySeconds,
			errorsTotal,
			syncRunSeconds,
			syncActivitiesStored,
			syncFetchFailures,
			syncStudentsProcessed,
		)
	})
}

// Requests exposes the counter for API requests.
func Requests() *prometheus.CounterVec {
	RegisterMetrics()
	return requestsTotal
}

// Latency exposes the latency histogram for API requests.
func Latency() *prometheus.HistogramVec {
	RegisterMetrics()
	return latencySeconds
}

// Errors exposes the counter for API error responses.
func Errors() *prometheus.CounterVec {
	RegisterMetrics()
	return errorsTotal
}

// SyncRunDuration exposes the histogram for sync pass durations.
func SyncRunDuration() prometheus.Histogram {
	RegisterMetrics()
	return syncRunSeconds
}

// SyncActivitiesStored exposes the per-source stored-activity counter.
func SyncActivitiesStored() *prometheus.CounterVec {
	RegisterMetrics()
	return syncActivitiesStored
}

// SyncFetchFailures exposes the per-source fetch failure counter.
func SyncFetchFailures() *prometheus.CounterVec {
	RegisterMetrics()
	return syncFetchFailures
}

// SyncStudentsProcessed exposes the processed-students counter.
func SyncStudentsProcessed() prometheus.Counter {
	RegisterMetrics()
	return syncStudentsProcessed
}
