package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"tradecargo/internal/events"
	"tradecargo/internal/events/consumer/mock"
	"tradecargo/internal/events/journal"
	jmock "tradecargo/internal/events/journal/mock"
	"tradecargo/internal/platform/config"
	"tradecargo/internal/platform/kafka"
	"tradecargo/internal/platform/metrics"
)

var testMetrics = metrics.New()

type ConsumerSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	source    *mock.MockMessageSource
	requeuer  *mock.MockRequeuer
	processor *mock.MockMessageProcessor
	journal   *jmock.MockJournal
}

func TestConsumerSuite(t *testing.T) {
	suite.Run(t, new(ConsumerSuite))
}

func (s *ConsumerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.source = mock.NewMockMessageSource(s.ctrl)
	s.requeuer = mock.NewMockRequeuer(s.ctrl)
	s.processor = mock.NewMockMessageProcessor(s.ctrl)
	s.journal = jmock.NewMockJournal(s.ctrl)
}

func (s *ConsumerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ConsumerSuite) service(policy config.AckPolicy) *Service {
	cfg := config.Config{
		InboundTopic:       "vakt.trade-cargo.inbound",
		PollInterval:       time.Millisecond,
		AckPolicy:          policy,
		ConsumeMaxAttempts: 3,
	}
	return New(s.source, s.requeuer, map[string]MessageProcessor{
		events.MessageTypeTradeData: s.processor,
	}, s.journal, testMetrics, cfg, slog.New(slog.DiscardHandler))
}

func message(vaktID, messageType string, headers map[string]string) *kafka.Message {
	body, _ := json.Marshal(map[string]any{
		"version":     1,
		"messageType": messageType,
		"vaktId":      vaktID,
	})
	return &kafka.Message{Value: body, Key: []byte(vaktID), Headers: headers}
}

func (s *ConsumerSuite) TestSuccessfulProcessing() {
	msg := message("V-1", events.MessageTypeTradeData, nil)
	s.processor.EXPECT().Process(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, env events.Envelope) error {
			s.Equal("V-1", env.VaktID)
			return nil
		})
	s.journal.EXPECT().Record(gomock.Any(), "V-1", events.MessageTypeTradeData, journal.OutcomeProcessed, "")
	s.source.EXPECT().Ack(gomock.Any(), msg).Return(nil)

	s.service(config.AckAlways).handle(context.Background(), msg)
}

func (s *ConsumerSuite) TestMissingVaktIDIsDropped() {
	msg := message("", events.MessageTypeTradeData, nil)
	s.journal.EXPECT().Record(gomock.Any(), "", events.MessageTypeTradeData, journal.OutcomeDropped, gomock.Any())
	s.source.EXPECT().Ack(gomock.Any(), msg).Return(nil)

	// No processor call expected.
	s.service(config.AckAlways).handle(context.Background(), msg)
}

func (s *ConsumerSuite) TestUnknownMessageTypeIsDropped() {
	msg := message("V-1", "KOMGO.Trade.Unknown", nil)
	s.journal.EXPECT().Record(gomock.Any(), "V-1", "KOMGO.Trade.Unknown", journal.OutcomeDropped, gomock.Any())
	s.source.EXPECT().Ack(gomock.Any(), msg).Return(nil)

	s.service(config.AckAlways).handle(context.Background(), msg)
}

func (s *ConsumerSuite) TestMalformedBodyIsDropped() {
	msg := &kafka.Message{Value: []byte("{not json")}
	s.journal.EXPECT().Record(gomock.Any(), "", "", journal.OutcomeDropped, gomock.Any())
	s.source.EXPECT().Ack(gomock.Any(), msg).Return(nil)

	s.service(config.AckAlways).handle(context.Background(), msg)
}

func (s *ConsumerSuite) TestFailureUnderAlwaysPolicyIsAcked() {
	msg := message("V-1", events.MessageTypeTradeData, nil)
	s.processor.EXPECT().Process(gomock.Any(), gomock.Any()).Return(errors.New("boom"))
	s.journal.EXPECT().Record(gomock.Any(), "V-1", events.MessageTypeTradeData, journal.OutcomeFailed, "boom")
	s.source.EXPECT().Ack(gomock.Any(), msg).Return(nil)

	s.service(config.AckAlways).handle(context.Background(), msg)
}

func (s *ConsumerSuite) TestFailureUnderRequeuePolicyReproduces() {
	msg := message("V-1", events.MessageTypeTradeData, nil)
	s.processor.EXPECT().Process(gomock.Any(), gomock.Any()).Return(errors.New("boom"))
	s.requeuer.EXPECT().
		Produce(gomock.Any(), "vakt.trade-cargo.inbound", "V-1", msg.Value,
			map[string]string{"x-attempts": "1"}).
		Return(nil)
	s.journal.EXPECT().Record(gomock.Any(), "V-1", events.MessageTypeTradeData, journal.OutcomeRequeued, "attempt 1")
	s.source.EXPECT().Ack(gomock.Any(), msg).Return(nil)

	s.service(config.AckRequeue).handle(context.Background(), msg)
}

func (s *ConsumerSuite) TestRequeueCeilingDropsMessage() {
	msg := message("V-1", events.MessageTypeTradeData, map[string]string{"x-attempts": "2"})
	s.processor.EXPECT().Process(gomock.Any(), gomock.Any()).Return(errors.New("boom"))
	s.journal.EXPECT().Record(gomock.Any(), "V-1", events.MessageTypeTradeData, journal.OutcomeFailed, "boom")
	s.source.EXPECT().Ack(gomock.Any(), msg).Return(nil)

	// attempts would reach the ceiling, so nothing is re-produced.
	s.service(config.AckRequeue).handle(context.Background(), msg)
}

func (s *ConsumerSuite) TestRunStopsOnContextCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	svc := s.service(config.AckAlways)

	s.source.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()

	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(time.Second):
		s.Fail("consumer did not stop")
	}
}
