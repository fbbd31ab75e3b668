package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service. Failed messages are
// only visible operationally, so the consumer counters are the primary signal
// that the VAKT feed is healthy.
type Metrics struct {
	MessagesConsumed  *prometheus.CounterVec
	MessagesDropped   *prometheus.CounterVec
	ProcessingSeconds *prometheus.HistogramVec
	EventsPublished   *prometheus.CounterVec
	NotificationsSent *prometheus.CounterVec
	RequestSeconds    *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		MessagesConsumed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "trade_cargo_messages_consumed_total",
			Help: "Inbound VAKT messages received, by message type and outcome",
		}, []string{"message_type", "outcome"}),
		MessagesDropped: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "trade_cargo_messages_dropped_total",
			Help: "Inbound messages dropped without processing, by reason",
		}, []string{"reason"}),
		ProcessingSeconds: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trade_cargo_message_processing_seconds",
			Help:    "End-to-end processing latency for one inbound message",
			Buckets: prometheus.DefBuckets,
		}, []string{"message_type"}),
		EventsPublished: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "trade_cargo_events_published_total",
			Help: "Domain events published to the internal exchange, by routing key",
		}, []string{"routing_key"}),
		NotificationsSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "trade_cargo_notifications_total",
			Help: "Notifications attempted against api-notif, by outcome",
		}, []string{"outcome"}),
		RequestSeconds: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trade_cargo_http_request_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}
