package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymapp_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymapp_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymapp_bookings_total",
			Help: "Total number of booking attempts",
		},
		[]string{"result"},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymapp_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
	)

	OccupancyTicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymapp_occupancy_ticks_total",
			Help: "Total number of occupancy simulation ticks",
		},
	)

	OccupancyUpdatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymapp_occupancy_updates_total",
			Help: "Total number of area occupancy changes applied",
		},
	)

	WorkoutsCompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymapp_workouts_completed_total",
			Help: "Total number of completed workout sessions",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymapp_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymapp_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(result string) {
	BookingsTotal.WithLabelValues(result).Inc()
}

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordOccupancyTick(updated int) {
	OccupancyTicksTotal.Inc()
	OccupancyUpdatesTotal.Add(float64(updated))
}

func RecordWorkoutCompleted() {
	WorkoutsCompletedTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
