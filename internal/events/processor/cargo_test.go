package processor

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	cargostore "tradecargo/internal/cargo/store"
	"tradecargo/internal/clients/notification"
	"tradecargo/internal/domain"
	"tradecargo/internal/events"
	"tradecargo/internal/events/processor/mock"
	pubmock "tradecargo/internal/events/publisher/mock"
	tradestore "tradecargo/internal/trade/store"
)

type CargoProcessorSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *cargostore.MemoryStore
	trades    *tradestore.MemoryStore
	notifier  *mock.MockNotifier
	publisher *pubmock.MockEventPublisher
	processor *CargoProcessor
}

func TestCargoProcessorSuite(t *testing.T) {
	suite.Run(t, new(CargoProcessorSuite))
}

func (s *CargoProcessorSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = cargostore.NewMemoryStore()
	s.trades = tradestore.NewMemoryStore()
	s.notifier = mock.NewMockNotifier(s.ctrl)
	s.publisher = pubmock.NewMockEventPublisher(s.ctrl)
	s.processor = NewCargoProcessor(s.store, s.trades, s.notifier, s.publisher, testMetrics, testLogger)
}

func (s *CargoProcessorSuite) TearDownTest() {
	s.ctrl.Finish()
}

func cargoMessage(vaktID, cargoID string, quantity float64) events.Envelope {
	msg := events.CargoMessageData{
		Version:     1,
		MessageType: events.MessageTypeCargoData,
		VaktID:      vaktID,
		CargoID:     cargoID,
		Parcels: []events.WireParcel{{
			ID:           "P-1",
			LaycanPeriod: &events.WirePeriod{StartDate: "2019-04-01", EndDate: "2019-04-03"},
			Quantity:     quantity,
		}},
	}
	body, _ := json.Marshal(msg)
	env, _ := events.ParseEnvelope(body)
	return env
}

func (s *CargoProcessorSuite) seedTrade(vaktID string) {
	trade := domain.NewTrade(domain.SourceVakt, vaktID, companyID, domain.TradeAttributes{
		Buyer:       companyID,
		Seller:      "seller-co",
		BuyerEtrmID: "E-100",
	})
	_, err := s.trades.Create(context.Background(), trade)
	s.Require().NoError(err)
}

func (s *CargoProcessorSuite) TestCreateWithGradeInference() {
	s.seedTrade("V-1")
	s.notifier.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n notification.Notification) error {
			s.Contains(n.Message, "New")
			s.Contains(n.Message, "E-100")
			s.Equal("F0401", n.Context["cargoId"])
			return nil
		})

	s.Require().NoError(s.processor.Process(context.Background(), cargoMessage("V-1", "F0401", 600000)))

	stored, err := s.store.FindOne(context.Background(), cargostore.Query{
		Source: domain.SourceVakt, SourceID: "V-1", CargoID: "F0401",
	})
	s.Require().NoError(err)
	s.Equal(domain.GradeForties, stored.Grade)
}

func (s *CargoProcessorSuite) TestCargoBeforeTradeIsAccepted() {
	// No trade seeded: the movement is stored anyway, the trade may still
	// be in flight.
	s.notifier.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)

	s.Require().NoError(s.processor.Process(context.Background(), cargoMessage("V-9", "B0100", 100)))

	_, err := s.store.FindOne(context.Background(), cargostore.Query{SourceID: "V-9", CargoID: "B0100"})
	s.NoError(err)
}

func (s *CargoProcessorSuite) TestReplayedMessageTakesUpdatePath() {
	s.seedTrade("V-1")
	s.notifier.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
	s.Require().NoError(s.processor.Process(context.Background(), cargoMessage("V-1", "F0401", 600000)))

	// Same payload again: persisted and published without a diff, the
	// source decides when a message is worth sending.
	s.publisher.EXPECT().PublishCargoUpdated(gomock.Any(), "V-1", gomock.Any()).Return(nil)
	s.notifier.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n notification.Notification) error {
			s.Contains(n.Message, "Updated")
			return nil
		})
	s.Require().NoError(s.processor.Process(context.Background(), cargoMessage("V-1", "F0401", 600000)))
}

func (s *CargoProcessorSuite) TestStatusMirrorsOwningTrade() {
	// Sale-side trade: its movements carry the discounting status.
	trade := domain.NewTrade(domain.SourceVakt, "V-5", companyID, domain.TradeAttributes{
		Buyer:        "buyer-co",
		Seller:       companyID,
		SellerEtrmID: "E-200",
	})
	_, err := s.trades.Create(context.Background(), trade)
	s.Require().NoError(err)

	s.notifier.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
	s.Require().NoError(s.processor.Process(context.Background(), cargoMessage("V-5", "F0401", 600000)))

	query := cargostore.Query{SourceID: "V-5", CargoID: "F0401"}
	stored, err := s.store.FindOne(context.Background(), query)
	s.Require().NoError(err)
	s.Equal(domain.StatusToBeDiscounted, stored.Status)

	// The wire carries no status; an update keeps the stored one.
	s.publisher.EXPECT().PublishCargoUpdated(gomock.Any(), "V-5", gomock.Any()).Return(nil)
	s.notifier.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
	s.Require().NoError(s.processor.Process(context.Background(), cargoMessage("V-5", "F0401", 550000)))

	stored, err = s.store.FindOne(context.Background(), query)
	s.Require().NoError(err)
	s.Equal(domain.StatusToBeDiscounted, stored.Status)
}

func (s *CargoProcessorSuite) TestUpdatePublishesInternalEvent() {
	s.seedTrade("V-1")
	s.notifier.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
	s.Require().NoError(s.processor.Process(context.Background(), cargoMessage("V-1", "F0401", 600000)))

	s.publisher.EXPECT().PublishCargoUpdated(gomock.Any(), "V-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, cargo domain.Cargo) error {
			s.Equal(float64(550000), cargo.Parcels[0].Quantity)
			return nil
		})
	s.notifier.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n notification.Notification) error {
			s.Contains(n.Message, "Updated")
			return nil
		})

	s.Require().NoError(s.processor.Process(context.Background(), cargoMessage("V-1", "F0401", 550000)))
}
