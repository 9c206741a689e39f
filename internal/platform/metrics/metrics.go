package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the registration workflow.
// Tracks registration counts, email dispatch outcomes, and critical path
// durations.
type Metrics struct {
	RegistrationsCreated prometheus.Counter
	EmailsSent           prometheus.Counter
	EmailsFailed         prometheus.Counter
	RegisterDuration     prometheus.Histogram
}

// New creates a Metrics instance with all registration metrics registered on
// the default registry.
func New() *Metrics {
	return &Metrics{
		RegistrationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "insightx_registrations_created_total",
			Help: "Total number of registrations persisted",
		}),
		EmailsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "insightx_emails_sent_total",
			Help: "Total number of confirmation emails delivered to the relay",
		}),
		EmailsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "insightx_emails_failed_total",
			Help: "Total number of confirmation emails that failed to send",
		}),
		RegisterDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "insightx_register_duration_seconds",
			Help:    "Duration of the registration workflow (request critical path)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementRegistrationsCreated records a successful registration.
func (m *Metrics) IncrementRegistrationsCreated() {
	m.RegistrationsCreated.Inc()
}

// IncrementEmailsSent records a confirmation email accepted by the relay.
func (m *Metrics) IncrementEmailsSent() {
	m.EmailsSent.Inc()
}

// IncrementEmailsFailed records a confirmation email that could not be sent.
func (m *Metrics) IncrementEmailsFailed() {
	m.EmailsFailed.Inc()
}

// ObserveRegister records the duration of a Register operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveRegister(start time.Time) {
	m.RegisterDuration.Observe(time.Since(start).Seconds())
}
