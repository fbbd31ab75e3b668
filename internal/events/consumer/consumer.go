// Package consumer runs the inbound poll loop: one message per tick, parsed,
// dispatched by message type, acknowledged according to the configured policy.
package consumer

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"tradecargo/internal/events"
	"tradecargo/internal/events/journal"
	"tradecargo/internal/platform/config"
	"tradecargo/internal/platform/kafka"
	"tradecargo/internal/platform/metrics"
)

// attemptsHeader counts redeliveries under the requeue ack policy.
const attemptsHeader = "x-attempts"

//go:generate mockgen -source=consumer.go -destination=mock/consumer_mock.go -package=mock

// MessageSource is the get/ack surface of the inbound topic.
type MessageSource interface {
	Get(ctx context.Context) (*kafka.Message, error)
	Ack(ctx context.Context, msg *kafka.Message) error
}

// Requeuer re-produces a failed message back onto the inbound topic.
type Requeuer interface {
	Produce(ctx context.Context, topic, key string, value []byte, headers map[string]string) error
}

// MessageProcessor handles one message type end to end.
type MessageProcessor interface {
	Process(ctx context.Context, env events.Envelope) error
}

// Service polls the inbound topic on a fixed interval. Processing failures
// never stop the loop: depending on policy the message is dropped or
// requeued, and either way the offset is committed so the partition keeps
// moving.
type Service struct {
	source     MessageSource
	requeuer   Requeuer
	processors map[string]MessageProcessor
	journal    journal.Journal
	metrics    *metrics.Metrics
	logger     *slog.Logger
	tracer     trace.Tracer

	inboundTopic string
	pollInterval time.Duration
	policy       config.AckPolicy
	maxAttempts  int
}

func New(
	source MessageSource,
	requeuer Requeuer,
	processors map[string]MessageProcessor,
	j journal.Journal,
	m *metrics.Metrics,
	cfg config.Config,
	logger *slog.Logger,
) *Service {
	return &Service{
		source:     source,
		requeuer:   requeuer,
		processors: processors,
		journal:    j,
		metrics:    m,
		logger:     logger,
		tracer:     otel.Tracer("tradecargo/internal/events/consumer"),

		inboundTopic: cfg.InboundTopic,
		pollInterval: cfg.PollInterval,
		policy:       cfg.AckPolicy,
		maxAttempts:  cfg.ConsumeMaxAttempts,
	}
}

// Run polls until the context is cancelled. At most one message is received
// and fully handled per tick.
func (s *Service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	s.logger.InfoContext(ctx, "inbound consumer started",
		"topic", s.inboundTopic, "pollInterval", s.pollInterval, "ackPolicy", s.policy)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("inbound consumer stopped")
			return nil
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Service) tick(ctx context.Context) {
	pollCtx, cancel := context.WithTimeout(ctx, s.pollInterval)
	msg, err := s.source.Get(pollCtx)
	cancel()
	if err != nil {
		s.logger.WarnContext(ctx, "poll failed", "error", err)
		return
	}
	if msg == nil {
		return
	}
	s.handle(ctx, msg)
}

func (s *Service) handle(ctx context.Context, msg *kafka.Message) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "consume inbound message",
		trace.WithSpanKind(trace.SpanKindConsumer))
	defer span.End()

	env, err := events.ParseEnvelope(msg.Value)
	if err != nil {
		s.drop(ctx, msg, events.Envelope{}, "malformed", err.Error())
		return
	}
	span.SetAttributes(
		attribute.String("messaging.message_type", env.MessageType),
		attribute.String("vakt.id", env.VaktID),
	)

	if env.VaktID == "" {
		s.drop(ctx, msg, env, "missing_vakt_id", "")
		return
	}
	proc, ok := s.processors[env.MessageType]
	if !ok {
		s.drop(ctx, msg, env, "unknown_message_type", env.MessageType)
		return
	}

	if err := proc.Process(ctx, env); err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.logger.ErrorContext(ctx, "message processing failed",
			"messageType", env.MessageType, "vaktId", env.VaktID, "error", err)
		s.metrics.MessagesConsumed.WithLabelValues(env.MessageType, "error").Inc()
		s.fail(ctx, msg, env, err)
		return
	}

	s.metrics.MessagesConsumed.WithLabelValues(env.MessageType, "ok").Inc()
	s.metrics.ProcessingSeconds.WithLabelValues(env.MessageType).Observe(time.Since(start).Seconds())
	s.journal.Record(ctx, env.VaktID, env.MessageType, journal.OutcomeProcessed, "")
	s.ack(ctx, msg)
}

// drop acknowledges a message that can never be processed. Redelivering it
// would fail identically, so the only useful action is the audit row.
func (s *Service) drop(ctx context.Context, msg *kafka.Message, env events.Envelope, reason, detail string) {
	s.logger.WarnContext(ctx, "dropping inbound message",
		"reason", reason, "messageType", env.MessageType, "vaktId", env.VaktID)
	s.metrics.MessagesDropped.WithLabelValues(reason).Inc()
	s.journal.Record(ctx, env.VaktID, env.MessageType, journal.OutcomeDropped, reason+" "+detail)
	s.ack(ctx, msg)
}

// fail applies the ack policy to a processing failure. The offset is always
// committed; under requeue the message is re-produced with a bumped attempt
// counter until the ceiling is hit.
func (s *Service) fail(ctx context.Context, msg *kafka.Message, env events.Envelope, procErr error) {
	if s.policy == config.AckRequeue {
		attempts := parseAttempts(msg.Headers) + 1
		if attempts < s.maxAttempts {
			headers := map[string]string{attemptsHeader: strconv.Itoa(attempts)}
			if err := s.requeuer.Produce(ctx, s.inboundTopic, string(msg.Key), msg.Value, headers); err != nil {
				s.logger.ErrorContext(ctx, "requeue failed, dropping message",
					"vaktId", env.VaktID, "error", err)
				s.journal.Record(ctx, env.VaktID, env.MessageType, journal.OutcomeFailed, procErr.Error())
			} else {
				s.journal.Record(ctx, env.VaktID, env.MessageType, journal.OutcomeRequeued,
					"attempt "+strconv.Itoa(attempts))
			}
			s.ack(ctx, msg)
			return
		}
		s.logger.ErrorContext(ctx, "message exhausted retry attempts",
			"vaktId", env.VaktID, "attempts", attempts)
	}
	s.journal.Record(ctx, env.VaktID, env.MessageType, journal.OutcomeFailed, procErr.Error())
	s.ack(ctx, msg)
}

func (s *Service) ack(ctx context.Context, msg *kafka.Message) {
	if err := s.source.Ack(ctx, msg); err != nil {
		s.logger.WarnContext(ctx, "ack failed", "error", err)
	}
}

func parseAttempts(headers map[string]string) int {
	n, err := strconv.Atoi(headers[attemptsHeader])
	if err != nil {
		return 0
	}
	return n
}
