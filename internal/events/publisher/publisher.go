// Package publisher emits deduplicated internal domain events for downstream
// services whenever a trade or cargo changes.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"tradecargo/internal/domain"
	"tradecargo/internal/platform/kafka"
	"tradecargo/internal/platform/metrics"
)

// Routing keys on the internal topic. Creation and update both publish
// Updated: consumers treat the event as "current state changed".
const (
	RoutingKeyTradeUpdated = "INTERNAL.TRADE.Updated"
	RoutingKeyCargoUpdated = "INTERNAL.CARGO.Updated"
)

//go:generate mockgen -source=publisher.go -destination=mock/publisher_mock.go -package=mock

// EventPublisher emits internal domain events keyed by the VAKT identifier.
type EventPublisher interface {
	PublishTradeUpdated(ctx context.Context, vaktID string, trade domain.Trade) error
	PublishCargoUpdated(ctx context.Context, vaktID string, cargo domain.Cargo) error
}

// KafkaPublisher writes internal events to the internal topic with the
// routing key in a message header.
type KafkaPublisher struct {
	producer *kafka.Producer
	topic    string
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewKafka(producer *kafka.Producer, topic string, m *metrics.Metrics, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic, metrics: m, logger: logger}
}

type tradeEnvelope struct {
	Trade tradePayload `json:"trade"`
}

type tradePayload struct {
	domain.Trade
	VaktID string `json:"vaktId"`
}

type cargoEnvelope struct {
	Cargo cargoPayload `json:"cargo"`
}

type cargoPayload struct {
	domain.Cargo
	VaktID string `json:"vaktId"`
}

func (p *KafkaPublisher) PublishTradeUpdated(ctx context.Context, vaktID string, trade domain.Trade) error {
	body, err := json.Marshal(tradeEnvelope{Trade: tradePayload{Trade: trade, VaktID: vaktID}})
	if err != nil {
		return fmt.Errorf("marshal trade event: %w", err)
	}
	return p.publish(ctx, RoutingKeyTradeUpdated, vaktID, body)
}

func (p *KafkaPublisher) PublishCargoUpdated(ctx context.Context, vaktID string, cargo domain.Cargo) error {
	body, err := json.Marshal(cargoEnvelope{Cargo: cargoPayload{Cargo: cargo, VaktID: vaktID}})
	if err != nil {
		return fmt.Errorf("marshal cargo event: %w", err)
	}
	return p.publish(ctx, RoutingKeyCargoUpdated, vaktID, body)
}

func (p *KafkaPublisher) publish(ctx context.Context, routingKey, vaktID string, body []byte) error {
	headers := map[string]string{"routing-key": routingKey}
	if err := p.producer.Produce(ctx, p.topic, vaktID, body, headers); err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	p.metrics.EventsPublished.WithLabelValues(routingKey).Inc()
	p.logger.InfoContext(ctx, "published internal event", "routingKey", routingKey, "vaktId", vaktID)
	return nil
}
