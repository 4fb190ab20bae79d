// Package observability registers and updates prometheus metrics.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	workoutPersistGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitfusion",
		Subsystem: "workouts",
		Name:      "last_workout_persisted_timestamp_seconds",
		Help:      "Unix timestamp of the most recent workout persisted to storage.",
	})
	workoutCompletedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fitfusion",
		Subsystem: "workouts",
		Name:      "last_workout_completed_timestamp_seconds",
		Help:      "Unix timestamp of the most recent workout marked completed.",
	})
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitfusion",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests handled, by method and status code.",
	}, []string{"method", "status"})
)

func init() {
	prometheus.MustRegister(workoutPersistGauge, workoutCompletedGauge, httpRequests)
}

// RecordWorkoutPersisted updates the persistence watermark gauge.
func RecordWorkoutPersisted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	workoutPersistGauge.Set(float64(ts.Unix()))
}

// RecordWorkoutCompleted updates the completion watermark gauge.
func RecordWorkoutCompleted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	workoutCompletedGauge.Set(float64(ts.Unix()))
}

// RecordHTTPRequest counts one handled request.
func RecordHTTPRequest(method, status string) {
	httpRequests.WithLabelValues(method, status).Inc()
}
