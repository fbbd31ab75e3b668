// Package events defines the inbound VAKT message envelope and the wire
// shapes of the trade and cargo payloads.
package events

import "encoding/json"

// Message types dispatched by the consumer. Anything else on the inbound
// topic is dropped and acknowledged.
const (
	MessageTypeTradeData = "KOMGO.Trade.TradeData"
	MessageTypeCargoData = "KOMGO.Trade.CargoData"
)

// Envelope is the common header of every inbound message. Payload keeps the
// raw body so the per-type decode can happen after dispatch.
type Envelope struct {
	Version     int    `json:"version"`
	MessageType string `json:"messageType"`
	VaktID      string `json:"vaktId"`

	Payload json.RawMessage `json:"-"`
}

// ParseEnvelope reads the header fields and retains the full body.
func ParseEnvelope(body []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Envelope{}, err
	}
	env.Payload = body
	return env, nil
}

// TradeMessageData is the trade payload as VAKT sends it. Dates travel as
// YYYY-MM-DD strings and are parsed during mapping.
type TradeMessageData struct {
	Version     int    `json:"version"`
	MessageType string `json:"messageType"`
	VaktID      string `json:"vaktId"`

	Buyer        string `json:"buyer"`
	Seller       string `json:"seller"`
	BuyerEtrmID  string `json:"buyerEtrmId"`
	SellerEtrmID string `json:"sellerEtrmId"`

	CreditRequirement string `json:"creditRequirement"`

	DealDate       string            `json:"dealDate"`
	DeliveryPeriod *WirePeriod       `json:"deliveryPeriod"`
	PaymentTerms   *WirePaymentTerms `json:"paymentTerms"`

	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	PriceUnit    string  `json:"priceUnit"`
	Quantity     float64 `json:"quantity"`
	MinTolerance float64 `json:"minTolerance"`
	MaxTolerance float64 `json:"maxTolerance"`

	DeliveryTerms             string `json:"deliveryTerms"`
	DeliveryLocation          string `json:"deliveryLocation"`
	InvoiceQuantity           string `json:"invoiceQuantity"`
	GeneralTermsAndConditions string `json:"generalTermsAndConditions"`
	Laytime                   string `json:"laytime"`
	DemurrageTerms            string `json:"demurrageTerms"`
	Law                       string `json:"law"`
}

// CargoMessageData is the cargo payload as VAKT sends it.
type CargoMessageData struct {
	Version     int    `json:"version"`
	MessageType string `json:"messageType"`
	VaktID      string `json:"vaktId"`

	CargoID string       `json:"cargoId"`
	Grade   string       `json:"grade"`
	Parcels []WireParcel `json:"parcels"`
}

type WirePeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type WirePaymentTerms struct {
	EventBase string `json:"eventBase"`
	When      string `json:"when"`
	Time      int    `json:"time"`
	TimeUnit  string `json:"timeUnit"`
	DayType   string `json:"dayType"`
}

type WireParcel struct {
	ID              string      `json:"id"`
	LaycanPeriod    *WirePeriod `json:"laycanPeriod"`
	ModeOfTransport string      `json:"modeOfTransport"`
	VesselIMO       int64       `json:"vesselIMO"`
	VesselName      string      `json:"vesselName"`
	LoadingPort     string      `json:"loadingPort"`
	DischargeArea   string      `json:"dischargeArea"`
	Inspector       string      `json:"inspector"`
	DeemedBLDate    string      `json:"deemedBLDate"`
	Quantity        float64     `json:"quantity"`
}
