package validator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"tradecargo/internal/domain"
	"tradecargo/internal/trade/validator/mock"
	dErrors "tradecargo/pkg/errors"
)

const companyID = "company-1"

type TradeValidatorSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	documents *mock.MockDocumentCatalog
	validator *Validator
}

func TestTradeValidatorSuite(t *testing.T) {
	suite.Run(t, new(TradeValidatorSuite))
}

func (s *TradeValidatorSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.documents = mock.NewMockDocumentCatalog(s.ctrl)
	s.validator = New(companyID, s.documents)
}

func (s *TradeValidatorSuite) TearDownTest() {
	s.ctrl.Finish()
}

// validPurchase is a minimal v1 purchase trade that passes every check.
func validPurchase() domain.Trade {
	return domain.NewTrade(domain.SourceKomgo, "K-1", companyID, domain.TradeAttributes{
		Buyer:       companyID,
		Seller:      "seller-co",
		BuyerEtrmID: "E-100",
		Currency:    "USD",
		DealDate:    domain.Date(2019, time.March, 1),
		Quantity:    600000,
		PaymentTerms: &domain.PaymentTerms{
			EventBase: "BL", When: "AFTER", Time: 30, TimeUnit: "DAYS", DayType: "CALENDAR",
		},
		GeneralTermsAndConditions: "suko90",
	})
}

func (s *TradeValidatorSuite) paths(errs []dErrors.FieldError) []string {
	paths := make([]string, 0, len(errs))
	for _, e := range errs {
		paths = append(paths, e.DataPath)
	}
	return paths
}

func (s *TradeValidatorSuite) TestValidTrade() {
	errs, err := s.validator.Validate(context.Background(), validPurchase())
	s.NoError(err)
	s.Empty(errs)
}

func (s *TradeValidatorSuite) TestRequiredFields() {
	trade := validPurchase()
	trade.Buyer = ""
	trade.Currency = ""
	trade.DealDate = nil

	errs, err := s.validator.Validate(context.Background(), trade)
	s.NoError(err)
	paths := s.paths(errs)
	s.Contains(paths, ".buyer")
	s.Contains(paths, ".currency")
	s.Contains(paths, ".dealDate")
}

func (s *TradeValidatorSuite) TestBuyerSellerMustDiffer() {
	trade := validPurchase()
	trade.Seller = trade.Buyer

	errs, err := s.validator.Validate(context.Background(), trade)
	s.NoError(err)
	s.Contains(s.paths(errs), ".seller")
}

func (s *TradeValidatorSuite) TestQuantityMustBePositive() {
	trade := validPurchase()
	trade.Quantity = 0

	errs, err := s.validator.Validate(context.Background(), trade)
	s.NoError(err)
	s.Contains(s.paths(errs), ".quantity")
}

func (s *TradeValidatorSuite) TestDeliveryPeriodOrder() {
	trade := validPurchase()
	trade.DeliveryPeriod = &domain.Period{
		StartDate: domain.Date(2019, time.May, 10),
		EndDate:   domain.Date(2019, time.May, 1),
	}

	errs, err := s.validator.Validate(context.Background(), trade)
	s.NoError(err)
	s.Contains(s.paths(errs), ".deliveryPeriod.startDate")
}

func (s *TradeValidatorSuite) TestToleranceOrder() {
	trade := validPurchase()
	trade.MinTolerance = 5
	trade.MaxTolerance = 2

	errs, err := s.validator.Validate(context.Background(), trade)
	s.NoError(err)
	s.Contains(s.paths(errs), ".minTolerance")
}

func (s *TradeValidatorSuite) TestKomgoEtrmIDByRole() {
	s.Run("buyer-role KOMGO trade requires buyerEtrmId", func() {
		trade := validPurchase()
		trade.BuyerEtrmID = ""
		errs, err := s.validator.Validate(context.Background(), trade)
		s.NoError(err)
		s.Contains(s.paths(errs), ".buyerEtrmId")
	})

	s.Run("seller-role KOMGO trade requires sellerEtrmId", func() {
		trade := validPurchase()
		trade.Buyer = "buyer-co"
		trade.Seller = companyID
		trade.BuyerEtrmID = ""
		errs, err := s.validator.Validate(context.Background(), trade)
		s.NoError(err)
		s.Contains(s.paths(errs), ".sellerEtrmId")
	})

	s.Run("VAKT trades may omit both", func() {
		trade := validPurchase()
		trade.Source = domain.SourceVakt
		trade.BuyerEtrmID = ""
		errs, err := s.validator.Validate(context.Background(), trade)
		s.NoError(err)
		s.Empty(errs)
	})
}

func (s *TradeValidatorSuite) TestSaleTradeRejectsLaytimeAndDemurrage() {
	trade := validPurchase()
	trade.Buyer = "buyer-co"
	trade.Seller = companyID
	trade.SellerEtrmID = "E-200"
	trade.BuyerEtrmID = ""
	trade.Laytime = "as per charter party"
	trade.DemurrageTerms = "as per charter party"

	errs, err := s.validator.Validate(context.Background(), trade)
	s.NoError(err)
	paths := s.paths(errs)
	s.Contains(paths, ".laytime")
	s.Contains(paths, ".demurrageTerms")
}

func (s *TradeValidatorSuite) TestSchemaVersions() {
	s.Run("v1 requires payment terms and general terms", func() {
		trade := validPurchase()
		trade.PaymentTerms = nil
		trade.GeneralTermsAndConditions = ""
		errs, err := s.validator.Validate(context.Background(), trade)
		s.NoError(err)
		paths := s.paths(errs)
		s.Contains(paths, ".paymentTerms")
		s.Contains(paths, ".generalTermsAndConditions")
	})

	s.Run("v1 rejects deliveryLocation", func() {
		trade := validPurchase()
		trade.DeliveryLocation = "Rotterdam"
		errs, err := s.validator.Validate(context.Background(), trade)
		s.NoError(err)
		s.Contains(s.paths(errs), ".deliveryLocation")
	})

	s.Run("v2 allows deliveryLocation and makes general terms optional", func() {
		trade := validPurchase()
		trade.Version = 2
		trade.DeliveryLocation = "Rotterdam"
		trade.GeneralTermsAndConditions = ""
		errs, err := s.validator.Validate(context.Background(), trade)
		s.NoError(err)
		s.Empty(errs)
	})

	s.Run("v2 open-credit trades may omit payment terms", func() {
		trade := validPurchase()
		trade.Version = 2
		trade.CreditRequirement = domain.CreditOpenCredit
		trade.PaymentTerms = nil
		errs, err := s.validator.Validate(context.Background(), trade)
		s.NoError(err)
		s.Empty(errs)
	})

	s.Run("v2 non-open-credit trades still need payment terms", func() {
		trade := validPurchase()
		trade.Version = 2
		trade.PaymentTerms = nil
		errs, err := s.validator.Validate(context.Background(), trade)
		s.NoError(err)
		s.Contains(s.paths(errs), ".paymentTerms")
	})

	s.Run("unknown version yields a version enum error", func() {
		trade := validPurchase()
		trade.Version = 9
		errs, err := s.validator.Validate(context.Background(), trade)
		s.NoError(err)
		s.Require().Len(errs, 1)
		s.Equal(".version", errs[0].DataPath)
		s.Equal("enum", errs[0].Keyword)
	})
}

func (s *TradeValidatorSuite) TestRequiredDocuments() {
	sale := func() domain.Trade {
		trade := validPurchase()
		trade.Buyer = "buyer-co"
		trade.Seller = companyID
		trade.SellerEtrmID = "E-200"
		trade.BuyerEtrmID = ""
		return trade
	}

	s.Run("known document types pass", func() {
		trade := sale()
		trade.RequiredDocuments = []string{"Q88"}
		s.documents.EXPECT().
			GetDocumentTypes(gomock.Any(), "tradeFinance", "trade-finance-documents").
			Return([]string{"Q88", "CERTIFICATE_OF_ORIGIN"}, nil)

		errs, err := s.validator.Validate(context.Background(), trade)
		s.NoError(err)
		s.Empty(errs)
	})

	s.Run("unknown document types are flagged", func() {
		trade := sale()
		trade.RequiredDocuments = []string{"Q88", "NOT_A_DOCUMENT"}
		s.documents.EXPECT().
			GetDocumentTypes(gomock.Any(), "tradeFinance", "trade-finance-documents").
			Return([]string{"Q88"}, nil)

		errs, err := s.validator.Validate(context.Background(), trade)
		s.NoError(err)
		s.Require().Len(errs, 1)
		s.Equal(".requiredDocuments", errs[0].DataPath)
		s.Contains(errs[0].Message, "NOT_A_DOCUMENT")
	})

	s.Run("catalog outage fails validation hard", func() {
		trade := sale()
		trade.RequiredDocuments = []string{"Q88"}
		s.documents.EXPECT().
			GetDocumentTypes(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, context.DeadlineExceeded)

		_, err := s.validator.Validate(context.Background(), trade)
		s.Error(err)
	})

	s.Run("buyer-role trades never hit the catalog", func() {
		trade := validPurchase()
		trade.RequiredDocuments = []string{"ANYTHING"}
		errs, err := s.validator.Validate(context.Background(), trade)
		s.NoError(err)
		s.Empty(errs)
	})
}
