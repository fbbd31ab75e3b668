// Package handler exposes the trade REST API.
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"tradecargo/internal/domain"
	"tradecargo/internal/platform/render"
	"tradecargo/internal/trade/service"
	"tradecargo/internal/trade/store"
	dErrors "tradecargo/pkg/errors"
)

type Handler struct {
	service *service.Service
}

func New(s *service.Service) *Handler {
	return &Handler{service: s}
}

// Routes mounts the trade endpoints on a router.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/trades", h.Create)
	r.Get("/trades", h.List)
	r.Get("/trades/{id}", h.Get)
	r.Put("/trades/{id}", h.Update)
	r.Delete("/trades/{id}", h.Delete)
	r.Get("/trades/{id}/movements", h.Movements)
}

// tradeRequest is the REST write shape. Dates travel as YYYY-MM-DD strings.
type tradeRequest struct {
	Source   string `json:"source"`
	SourceID string `json:"sourceId"`

	Buyer        string `json:"buyer"`
	Seller       string `json:"seller"`
	BuyerEtrmID  string `json:"buyerEtrmId"`
	SellerEtrmID string `json:"sellerEtrmId"`

	Commodity         string `json:"commodity"`
	CreditRequirement string `json:"creditRequirement"`

	DealDate       string         `json:"dealDate"`
	DeliveryPeriod *periodRequest `json:"deliveryPeriod"`
	PaymentTerms   *paymentTerms  `json:"paymentTerms"`

	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	PriceUnit    string  `json:"priceUnit"`
	Quantity     float64 `json:"quantity"`
	MinTolerance float64 `json:"minTolerance"`
	MaxTolerance float64 `json:"maxTolerance"`

	DeliveryTerms             string   `json:"deliveryTerms"`
	DeliveryLocation          string   `json:"deliveryLocation"`
	InvoiceQuantity           string   `json:"invoiceQuantity"`
	GeneralTermsAndConditions string   `json:"generalTermsAndConditions"`
	Laytime                   string   `json:"laytime"`
	DemurrageTerms            string   `json:"demurrageTerms"`
	Law                       string   `json:"law"`
	RequiredDocuments         []string `json:"requiredDocuments"`

	Version int `json:"version"`
}

type periodRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type paymentTerms struct {
	EventBase string `json:"eventBase"`
	When      string `json:"when"`
	Time      int    `json:"time"`
	TimeUnit  string `json:"timeUnit"`
	DayType   string `json:"dayType"`
}

type listResponse struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, attrs, err := decodeTrade(r)
	if err != nil {
		render.Error(w, err)
		return
	}
	trade, err := h.service.Create(r.Context(), domain.Source(req.Source), req.SourceID, attrs)
	if err != nil {
		render.Error(w, err)
		return
	}
	render.JSON(w, http.StatusCreated, trade)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	trade, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		render.Error(w, err)
		return
	}
	render.JSON(w, http.StatusOK, trade)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := store.Query{
		Source:       domain.Source(r.URL.Query().Get("source")),
		SourceID:     r.URL.Query().Get("sourceId"),
		BuyerEtrmID:  r.URL.Query().Get("buyerEtrmId"),
		SellerEtrmID: r.URL.Query().Get("sellerEtrmId"),
	}
	opts := pagination(r)
	trades, total, err := h.service.Find(r.Context(), query, opts)
	if err != nil {
		render.Error(w, err)
		return
	}
	if trades == nil {
		trades = []domain.Trade{}
	}
	render.JSON(w, http.StatusOK, listResponse{
		Items: trades,
		Total: total,
		Skip:  opts.Skip,
		Limit: opts.Limit,
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	req, attrs, err := decodeTrade(r)
	if err != nil {
		render.Error(w, err)
		return
	}
	trade, err := h.service.Update(r.Context(), chi.URLParam(r, "id"),
		domain.Source(req.Source), req.SourceID, attrs)
	if err != nil {
		render.Error(w, err)
		return
	}
	render.JSON(w, http.StatusOK, trade)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		render.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Movements(w http.ResponseWriter, r *http.Request) {
	cargos, err := h.service.Movements(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		render.Error(w, err)
		return
	}
	if cargos == nil {
		cargos = []domain.Cargo{}
	}
	render.JSON(w, http.StatusOK, cargos)
}

func decodeTrade(r *http.Request) (tradeRequest, domain.TradeAttributes, error) {
	var req tradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, domain.TradeAttributes{}, dErrors.New(dErrors.CodeBadRequest, "invalid request body")
	}
	attrs, err := req.attributes()
	if err != nil {
		return req, domain.TradeAttributes{}, err
	}
	return req, attrs, nil
}

func (req tradeRequest) attributes() (domain.TradeAttributes, error) {
	dealDate, err := parseDateField(req.DealDate, ".dealDate")
	if err != nil {
		return domain.TradeAttributes{}, err
	}
	deliveryPeriod, err := req.DeliveryPeriod.period(".deliveryPeriod")
	if err != nil {
		return domain.TradeAttributes{}, err
	}

	attrs := domain.TradeAttributes{
		Buyer:        req.Buyer,
		Seller:       req.Seller,
		BuyerEtrmID:  req.BuyerEtrmID,
		SellerEtrmID: req.SellerEtrmID,

		Commodity:         req.Commodity,
		CreditRequirement: domain.CreditRequirement(req.CreditRequirement),

		DealDate:       dealDate,
		DeliveryPeriod: deliveryPeriod,

		Price:        req.Price,
		Currency:     req.Currency,
		PriceUnit:    req.PriceUnit,
		Quantity:     req.Quantity,
		MinTolerance: req.MinTolerance,
		MaxTolerance: req.MaxTolerance,

		DeliveryTerms:             req.DeliveryTerms,
		DeliveryLocation:          req.DeliveryLocation,
		InvoiceQuantity:           req.InvoiceQuantity,
		GeneralTermsAndConditions: req.GeneralTermsAndConditions,
		Laytime:                   req.Laytime,
		DemurrageTerms:            req.DemurrageTerms,
		Law:                       req.Law,
		RequiredDocuments:         req.RequiredDocuments,

		Version: req.Version,
	}
	if req.PaymentTerms != nil {
		attrs.PaymentTerms = &domain.PaymentTerms{
			EventBase: req.PaymentTerms.EventBase,
			When:      req.PaymentTerms.When,
			Time:      req.PaymentTerms.Time,
			TimeUnit:  req.PaymentTerms.TimeUnit,
			DayType:   req.PaymentTerms.DayType,
		}
	}
	return attrs, nil
}

func (p *periodRequest) period(path string) (*domain.Period, error) {
	if p == nil {
		return nil, nil
	}
	start, err := parseDateField(p.StartDate, path+".startDate")
	if err != nil {
		return nil, err
	}
	end, err := parseDateField(p.EndDate, path+".endDate")
	if err != nil {
		return nil, err
	}
	return &domain.Period{StartDate: start, EndDate: end}, nil
}

func parseDateField(value, path string) (*time.Time, error) {
	date, err := domain.ParseDate(value)
	if err != nil {
		return nil, dErrors.WithErrors(dErrors.CodeBadRequest, "Invalid trade", []dErrors.FieldError{{
			DataPath:   path,
			Keyword:    "format",
			Message:    fmt.Sprintf("should match format '%s'", domain.DateLayout),
			Params:     map[string]any{"format": "date"},
			SchemaPath: "#/format",
		}})
	}
	return date, nil
}

func pagination(r *http.Request) store.Options {
	opts := store.Options{Limit: store.DefaultLimit}
	if v, err := strconv.Atoi(r.URL.Query().Get("skip")); err == nil && v >= 0 {
		opts.Skip = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		opts.Limit = v
	}
	return opts
}
