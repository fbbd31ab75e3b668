package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	cargostore "tradecargo/internal/cargo/store"
	"tradecargo/internal/clients/tradefinance"
	"tradecargo/internal/domain"
	"tradecargo/internal/trade/service/mock"
	"tradecargo/internal/trade/store"
	dErrors "tradecargo/pkg/errors"
)

const companyID = "company-1"

type TradeServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *store.MemoryStore
	cargos    *cargostore.MemoryStore
	validator *mock.MockValidator
	lcs       *mock.MockLCProvider
	publisher *mock.MockEventPublisher
	service   *Service
}

func TestTradeServiceSuite(t *testing.T) {
	suite.Run(t, new(TradeServiceSuite))
}

func (s *TradeServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = store.NewMemoryStore()
	s.cargos = cargostore.NewMemoryStore()
	s.validator = mock.NewMockValidator(s.ctrl)
	s.lcs = mock.NewMockLCProvider(s.ctrl)
	s.publisher = mock.NewMockEventPublisher(s.ctrl)
	s.service = New(s.store, s.cargos, s.validator, s.lcs, s.publisher, companyID, slog.New(slog.DiscardHandler))
}

func (s *TradeServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TradeServiceSuite) passValidation() {
	s.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

func purchaseAttrs(etrmID string) domain.TradeAttributes {
	return domain.TradeAttributes{
		Buyer:       companyID,
		Seller:      "seller-co",
		BuyerEtrmID: etrmID,
		Currency:    "USD",
		Quantity:    600000,
		DealDate:    domain.Date(2019, time.March, 1),
	}
}

func (s *TradeServiceSuite) TestCreate() {
	ctx := context.Background()

	s.Run("KOMGO trades get a generated sourceId", func() {
		s.passValidation()
		trade, err := s.service.Create(ctx, domain.SourceKomgo, "", purchaseAttrs("E-1"))
		s.Require().NoError(err)
		s.NotEmpty(trade.SourceID)
		s.NotEmpty(trade.ID)
		s.Equal(domain.StatusToBeFinanced, trade.Status)
	})

	s.Run("structural validation failures map to bad request", func() {
		// A fresh validator keeps this one-shot expectation from being
		// shadowed by the AnyTimes() registered in earlier subtests.
		validator := mock.NewMockValidator(s.ctrl)
		validator.EXPECT().Validate(gomock.Any(), gomock.Any()).
			Return([]dErrors.FieldError{{DataPath: ".buyer", Keyword: "required"}}, nil)
		svc := New(s.store, s.cargos, validator, s.lcs, s.publisher, companyID, slog.New(slog.DiscardHandler))
		_, err := svc.Create(ctx, domain.SourceKomgo, "", purchaseAttrs("E-2"))
		s.Require().Error(err)
		domainErr, ok := dErrors.From(err)
		s.Require().True(ok)
		s.Equal(dErrors.CodeBadRequest, domainErr.Code)
		s.Len(domainErr.Errors, 1)
	})

	s.Run("duplicate natural key conflicts with the original message", func() {
		s.passValidation()
		_, err := s.service.Create(ctx, domain.SourceVakt, "V-1", purchaseAttrs("E-3"))
		s.Require().NoError(err)

		_, err = s.service.Create(ctx, domain.SourceVakt, "V-1", purchaseAttrs("E-4"))
		s.Require().Error(err)
		domainErr, ok := dErrors.From(err)
		s.Require().True(ok)
		s.Equal(dErrors.CodeConflict, domainErr.Code)
		s.Equal("Trade with same ID already exists. Source: VAKT, Id: V-1", domainErr.Message)
	})

	s.Run("buyer etrmId collisions conflict", func() {
		s.passValidation()
		_, err := s.service.Create(ctx, domain.SourceKomgo, "", purchaseAttrs("E-5"))
		s.Require().NoError(err)

		_, err = s.service.Create(ctx, domain.SourceKomgo, "", purchaseAttrs("E-5"))
		s.Require().Error(err)
		domainErr, ok := dErrors.From(err)
		s.Require().True(ok)
		s.Equal(dErrors.CodeConflict, domainErr.Code)
		s.Equal("Trade with the same Buyer EtrmID already exists. EtrmId: E-5", domainErr.Message)
	})

	s.Run("unknown sources are rejected", func() {
		_, err := s.service.Create(ctx, "SAP", "S-1", purchaseAttrs("E-7"))
		s.Require().Error(err)
		domainErr, ok := dErrors.From(err)
		s.Require().True(ok)
		s.Equal(dErrors.CodeBadRequest, domainErr.Code)
		s.Contains(domainErr.Fields["source"][0], "SAP")
	})

	s.Run("VAKT trades must bring their own sourceId", func() {
		_, err := s.service.Create(ctx, domain.SourceVakt, "", purchaseAttrs("E-8"))
		s.Require().Error(err)
		domainErr, ok := dErrors.From(err)
		s.Require().True(ok)
		s.Equal(dErrors.CodeBadRequest, domainErr.Code)
		s.NotEmpty(domainErr.Fields["sourceId"])
	})

	s.Run("seller etrmId collisions conflict on sale trades", func() {
		s.passValidation()
		attrs := domain.TradeAttributes{
			Buyer:        "buyer-co",
			Seller:       companyID,
			SellerEtrmID: "E-6",
			Currency:     "USD",
			Quantity:     1,
		}
		_, err := s.service.Create(ctx, domain.SourceKomgo, "", attrs)
		s.Require().NoError(err)

		_, err = s.service.Create(ctx, domain.SourceKomgo, "", attrs)
		s.Require().Error(err)
		domainErr, _ := dErrors.From(err)
		s.Equal("Trade with the same Seller EtrmID already exists. EtrmId: E-6", domainErr.Message)
	})
}

func (s *TradeServiceSuite) TestUpdate() {
	ctx := context.Background()

	s.Run("unknown trade is not found", func() {
		_, err := s.service.Update(ctx, "missing", domain.SourceKomgo, "K-1", purchaseAttrs("E-1"))
		s.True(dErrors.Is(err, dErrors.CodeNotFound))
	})

	s.Run("material changes are persisted and published", func() {
		s.passValidation()
		created, err := s.service.Create(ctx, domain.SourceKomgo, "", purchaseAttrs("E-10"))
		s.Require().NoError(err)

		attrs := purchaseAttrs("E-10")
		attrs.Price = 72.25
		s.publisher.EXPECT().PublishTradeUpdated(gomock.Any(), created.SourceID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, trade domain.Trade) error {
				s.Equal(72.25, trade.Price)
				return nil
			})
		updated, err := s.service.Update(ctx, created.ID, created.Source, created.SourceID, attrs)
		s.Require().NoError(err)
		s.Equal(72.25, updated.Price)
		s.Equal(created.SourceID, updated.SourceID)
	})

	s.Run("no-op updates publish nothing", func() {
		s.passValidation()
		created, err := s.service.Create(ctx, domain.SourceKomgo, "", purchaseAttrs("E-15"))
		s.Require().NoError(err)

		_, err = s.service.Update(ctx, created.ID, created.Source, created.SourceID, purchaseAttrs("E-15"))
		s.NoError(err)
	})

	s.Run("natural key and counterparties are immutable", func() {
		s.passValidation()
		created, err := s.service.Create(ctx, domain.SourceKomgo, "", purchaseAttrs("E-11"))
		s.Require().NoError(err)

		attrs := purchaseAttrs("E-11")
		attrs.Seller = "other-seller"
		_, err = s.service.Update(ctx, created.ID, domain.SourceVakt, "hijacked", attrs)
		s.Require().Error(err)
		domainErr, ok := dErrors.From(err)
		s.Require().True(ok)
		s.Equal(dErrors.CodeBadRequest, domainErr.Code)
		s.Contains(domainErr.Fields["source"][0], "Current: KOMGO, new: VAKT")
		s.Contains(domainErr.Fields["sourceId"][0], "new: hijacked")
		s.Contains(domainErr.Fields["seller"][0], "new: other-seller")
	})

	s.Run("sale trades lock their financing terms", func() {
		s.passValidation()
		attrs := domain.TradeAttributes{
			Buyer:        "buyer-co",
			Seller:       companyID,
			SellerEtrmID: "E-16",
			Commodity:    "BFOET",
			Currency:     "USD",
			Quantity:     600000,
		}
		created, err := s.service.Create(ctx, domain.SourceKomgo, "", attrs)
		s.Require().NoError(err)
		s.Require().Equal(domain.StatusToBeDiscounted, created.Status)

		attrs.Commodity = "WTI"
		attrs.CreditRequirement = domain.CreditOpenCredit
		_, err = s.service.Update(ctx, created.ID, created.Source, created.SourceID, attrs)
		s.Require().Error(err)
		domainErr, ok := dErrors.From(err)
		s.Require().True(ok)
		s.Equal(dErrors.CodeBadRequest, domainErr.Code)
		s.Contains(domainErr.Fields["commodity"][0], "Current: BFOET, new: WTI")
		s.Contains(domainErr.Fields["creditRequirement"][0], "new: OPEN_CREDIT")
	})

	s.Run("clearing a protected field counts as a change", func() {
		s.passValidation()
		created, err := s.service.Create(ctx, domain.SourceKomgo, "", purchaseAttrs("E-17"))
		s.Require().NoError(err)

		attrs := purchaseAttrs("E-17")
		attrs.Buyer = ""
		_, err = s.service.Update(ctx, created.ID, created.Source, created.SourceID, attrs)
		s.Require().Error(err)
		domainErr, ok := dErrors.From(err)
		s.Require().True(ok)
		s.Contains(domainErr.Fields["buyer"][0], "Current: "+companyID)
	})

	s.Run("sale trades past discounting stage reject edits", func() {
		s.passValidation()
		trade := domain.NewTrade(domain.SourceKomgo, "K-9", companyID, domain.TradeAttributes{
			Buyer:        "buyer-co",
			Seller:       companyID,
			SellerEtrmID: "E-12",
		})
		trade.Status = "TO_BE_PAID"
		id, err := s.store.Create(ctx, trade)
		s.Require().NoError(err)

		_, err = s.service.Update(ctx, id, trade.Source, trade.SourceID, purchaseAttrs("E-12"))
		s.Require().Error(err)
		domainErr, ok := dErrors.From(err)
		s.Require().True(ok)
		s.Equal([]string{"Can't edit trade in status: TO_BE_PAID"}, domainErr.Fields["status"])
	})

	s.Run("changing the etrmId re-checks uniqueness", func() {
		s.passValidation()
		_, err := s.service.Create(ctx, domain.SourceKomgo, "", purchaseAttrs("E-13"))
		s.Require().NoError(err)
		second, err := s.service.Create(ctx, domain.SourceKomgo, "", purchaseAttrs("E-14"))
		s.Require().NoError(err)

		_, err = s.service.Update(ctx, second.ID, second.Source, second.SourceID, purchaseAttrs("E-13"))
		s.True(dErrors.Is(err, dErrors.CodeConflict))

		// Keeping the same etrmId does not trip over itself.
		_, err = s.service.Update(ctx, second.ID, second.Source, second.SourceID, purchaseAttrs("E-14"))
		s.NoError(err)
	})
}

func (s *TradeServiceSuite) TestDelete() {
	ctx := context.Background()

	s.Run("live letter of credit blocks deletion", func() {
		s.passValidation()
		created, err := s.service.Create(ctx, domain.SourceKomgo, "", purchaseAttrs("E-20"))
		s.Require().NoError(err)

		s.lcs.EXPECT().GetLettersOfCredit(gomock.Any(), created.ID).
			Return([]tradefinance.LetterOfCredit{{Reference: "LC-1", Status: "issued"}}, nil)
		err = s.service.Delete(ctx, created.ID)
		s.Require().Error(err)
		domainErr, ok := dErrors.From(err)
		s.Require().True(ok)
		s.Equal(dErrors.CodeConflict, domainErr.Code)
		s.Equal("You can't remove trade "+created.ID+", trade have a LC document", domainErr.Message)
	})

	s.Run("rejected letters of credit do not block", func() {
		s.passValidation()
		created, err := s.service.Create(ctx, domain.SourceKomgo, "", purchaseAttrs("E-21"))
		s.Require().NoError(err)

		s.lcs.EXPECT().GetLettersOfCredit(gomock.Any(), created.ID).
			Return([]tradefinance.LetterOfCredit{{Status: tradefinance.StatusRequestRejected}}, nil)
		s.Require().NoError(s.service.Delete(ctx, created.ID))

		_, err = s.service.Get(ctx, created.ID)
		s.True(dErrors.Is(err, dErrors.CodeNotFound))
	})
}

func (s *TradeServiceSuite) TestMovements() {
	ctx := context.Background()
	s.passValidation()
	created, err := s.service.Create(ctx, domain.SourceVakt, "V-30", purchaseAttrs("E-30"))
	s.Require().NoError(err)

	_, err = s.cargos.Create(ctx, domain.NewCargo(domain.SourceVakt, "V-30", domain.CargoAttributes{CargoID: "F0401"}))
	s.Require().NoError(err)
	_, err = s.cargos.Create(ctx, domain.NewCargo(domain.SourceVakt, "V-31", domain.CargoAttributes{CargoID: "F0500"}))
	s.Require().NoError(err)

	movements, err := s.service.Movements(ctx, created.ID)
	s.Require().NoError(err)
	s.Require().Len(movements, 1)
	s.Equal("F0401", movements[0].CargoID)
}
