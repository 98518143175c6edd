// Package metrics defines Prometheus metrics for the relay.
//
// Metric naming follows Prometheus conventions:
//   - relay_ prefix for all custom metrics
//   - _total suffix for counters
//   - _seconds suffix for duration histograms
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Status label values.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

var (
	// Registry holds every relay collector plus Go and process collectors.
	Registry = prometheus.NewRegistry()

	// WebhookRequestsTotal counts webhook requests by terminal outcome.
	WebhookRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_webhook_requests_total",
			Help: "Total webhook requests by terminal outcome.",
		},
		[]string{"outcome"},
	)

	// ForwardsTotal counts forward attempts by message type and status.
	ForwardsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_forwards_total",
			Help: "Total forward attempts by message type and status.",
		},
		[]string{"message_type", "status"},
	)

	// ForwardDurationSeconds is a histogram of forwardMessage call latency.
	ForwardDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "relay_forward_duration_seconds",
			Help:    "Duration of forwardMessage calls in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// ReactionsTotal counts reaction attempts by reaction and status.
	ReactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_reactions_total",
			Help: "Total reaction attempts on original messages.",
		},
		[]string{"reaction", "status"},
	)

	// NotificationsTotal counts direct notices to senders by kind and status.
	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_notifications_total",
			Help: "Total notices sent to senders by kind and status.",
		},
		[]string{"kind", "status"},
	)

	// CommandsTotal counts handled commands.
	CommandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_commands_total",
			Help: "Total handled bot commands.",
		},
		[]string{"command", "status"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		WebhookRequestsTotal,
		ForwardsTotal,
		ForwardDurationSeconds,
		ReactionsTotal,
		NotificationsTotal,
		CommandsTotal,
	)
}

// Handler serves the relay registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordWebhook records one webhook terminal outcome.
func RecordWebhook(outcome string) {
	WebhookRequestsTotal.WithLabelValues(outcome).Inc()
}

// RecordForward records one forward attempt.
func RecordForward(messageType string, err error, duration time.Duration) {
	ForwardsTotal.WithLabelValues(messageType, status(err)).Inc()
	ForwardDurationSeconds.Observe(duration.Seconds())
}

// RecordReaction records one reaction attempt.
func RecordReaction(reaction string, err error) {
	ReactionsTotal.WithLabelValues(reaction, status(err)).Inc()
}

// RecordNotification records one notice sent to a sender.
func RecordNotification(kind string, err error) {
	NotificationsTotal.WithLabelValues(kind, status(err)).Inc()
}

// RecordCommand records one handled command.
func RecordCommand(command string, err error) {
	CommandsTotal.WithLabelValues(command, status(err)).Inc()
}

func status(err error) string {
	if err != nil {
		return StatusFailure
	}
	return StatusSuccess
}
