package domain

import "time"

// Source designates where a trade or cargo originated.
type Source string

const (
	SourceKomgo Source = "KOMGO"
	SourceVakt  Source = "VAKT"
)

// Status is the financing lifecycle state derived from the owning company's
// trading role: purchases get financed, sales get discounted.
type Status string

const (
	StatusToBeFinanced   Status = "TO_BE_FINANCED"
	StatusToBeDiscounted Status = "TO_BE_DISCOUNTED"
)

// CreditRequirement is the financing instrument backing the trade.
type CreditRequirement string

const (
	CreditDocumentaryLetterOfCredit CreditRequirement = "DOCUMENTARY_LETTER_OF_CREDIT"
	CreditStandbyLetterOfCredit     CreditRequirement = "STANDBY_LETTER_OF_CREDIT"
	CreditOpenCredit                CreditRequirement = "OPEN_CREDIT"
)

// PaymentTerms describes when payment falls due relative to a shipping event.
type PaymentTerms struct {
	EventBase string `json:"eventBase"`
	When      string `json:"when"`
	Time      int    `json:"time"`
	TimeUnit  string `json:"timeUnit"`
	DayType   string `json:"dayType"`
}

// Period is a date range; both ends are UTC-midnight dates.
type Period struct {
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// Trade is the canonical trade entity. It is a value object: updates build a
// new Trade from merged fields, nothing mutates one in place.
type Trade struct {
	ID       string `json:"_id,omitempty"`
	Source   Source `json:"source"`
	SourceID string `json:"sourceId"`
	Status   Status `json:"status"`

	Buyer        string `json:"buyer"`
	Seller       string `json:"seller"`
	BuyerEtrmID  string `json:"buyerEtrmId,omitempty"`
	SellerEtrmID string `json:"sellerEtrmId,omitempty"`

	Commodity         string            `json:"commodity,omitempty"`
	CreditRequirement CreditRequirement `json:"creditRequirement"`

	DealDate       *time.Time    `json:"dealDate"`
	DeliveryPeriod *Period       `json:"deliveryPeriod,omitempty"`
	PaymentTerms   *PaymentTerms `json:"paymentTerms,omitempty"`

	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	PriceUnit    string  `json:"priceUnit"`
	Quantity     float64 `json:"quantity"`
	MinTolerance float64 `json:"minTolerance"`
	MaxTolerance float64 `json:"maxTolerance"`

	DeliveryTerms             string   `json:"deliveryTerms,omitempty"`
	DeliveryLocation          string   `json:"deliveryLocation,omitempty"`
	InvoiceQuantity           string   `json:"invoiceQuantity,omitempty"`
	GeneralTermsAndConditions string   `json:"generalTermsAndConditions,omitempty"`
	Laytime                   string   `json:"laytime,omitempty"`
	DemurrageTerms            string   `json:"demurrageTerms,omitempty"`
	Law                       string   `json:"law,omitempty"`
	RequiredDocuments         []string `json:"requiredDocuments,omitempty"`

	Version int `json:"version"`

	CreatedAt time.Time  `json:"createdAt,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt,omitempty"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// TradeAttributes is everything a caller supplies besides the natural key.
// Status is never an input: it is derived from the owning company's role.
type TradeAttributes struct {
	Buyer        string
	Seller       string
	BuyerEtrmID  string
	SellerEtrmID string

	Commodity         string
	CreditRequirement CreditRequirement

	DealDate       *time.Time
	DeliveryPeriod *Period
	PaymentTerms   *PaymentTerms

	Price        float64
	Currency     string
	PriceUnit    string
	Quantity     float64
	MinTolerance float64
	MaxTolerance float64

	DeliveryTerms             string
	DeliveryLocation          string
	InvoiceQuantity           string
	GeneralTermsAndConditions string
	Laytime                   string
	DemurrageTerms            string
	Law                       string
	RequiredDocuments         []string

	Version int
}

// NewTrade constructs the canonical trade. The owning company's static ID
// decides the trading role: selling means the receivable gets discounted,
// anything else is a purchase to be financed. An absent credit requirement
// defaults to a documentary letter of credit.
func NewTrade(source Source, sourceID, companyStaticID string, attrs TradeAttributes) Trade {
	status := StatusToBeFinanced
	if attrs.Seller == companyStaticID {
		status = StatusToBeDiscounted
	}
	credit := attrs.CreditRequirement
	if credit == "" {
		credit = CreditDocumentaryLetterOfCredit
	}
	version := attrs.Version
	if version == 0 {
		version = 1
	}
	return Trade{
		Source:   source,
		SourceID: sourceID,
		Status:   status,

		Buyer:        attrs.Buyer,
		Seller:       attrs.Seller,
		BuyerEtrmID:  attrs.BuyerEtrmID,
		SellerEtrmID: attrs.SellerEtrmID,

		Commodity:         attrs.Commodity,
		CreditRequirement: credit,

		DealDate:       attrs.DealDate,
		DeliveryPeriod: attrs.DeliveryPeriod,
		PaymentTerms:   attrs.PaymentTerms,

		Price:        attrs.Price,
		Currency:     attrs.Currency,
		PriceUnit:    attrs.PriceUnit,
		Quantity:     attrs.Quantity,
		MinTolerance: attrs.MinTolerance,
		MaxTolerance: attrs.MaxTolerance,

		DeliveryTerms:             attrs.DeliveryTerms,
		DeliveryLocation:          attrs.DeliveryLocation,
		InvoiceQuantity:           attrs.InvoiceQuantity,
		GeneralTermsAndConditions: attrs.GeneralTermsAndConditions,
		Laytime:                   attrs.Laytime,
		DemurrageTerms:            attrs.DemurrageTerms,
		Law:                       attrs.Law,
		RequiredDocuments:         attrs.RequiredDocuments,

		Version: version,
	}
}

// SellerRole reports whether the owning company is the seller on this trade.
func (t Trade) SellerRole(companyStaticID string) bool {
	return t.Seller == companyStaticID
}
