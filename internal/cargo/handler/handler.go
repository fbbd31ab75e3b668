// Package handler exposes the cargo movement REST API.
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"tradecargo/internal/cargo/service"
	"tradecargo/internal/cargo/store"
	"tradecargo/internal/domain"
	"tradecargo/internal/platform/render"
	dErrors "tradecargo/pkg/errors"
)

type Handler struct {
	service *service.Service
}

func New(s *service.Service) *Handler {
	return &Handler{service: s}
}

// Routes mounts the movement endpoints on a router. Reads and deletes need
// the source alongside the id since IDs are only unique per source.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/movements", h.Create)
	r.Get("/movements", h.List)
	r.Get("/movements/{id}", h.Get)
	r.Put("/movements/{id}", h.Update)
	r.Delete("/movements/{id}", h.Delete)
}

// cargoRequest is the REST write shape. Dates travel as YYYY-MM-DD strings.
type cargoRequest struct {
	Source   string `json:"source"`
	SourceID string `json:"sourceId"`

	CargoID string          `json:"cargoId"`
	Grade   string          `json:"grade"`
	Parcels []parcelRequest `json:"parcels"`

	Version int `json:"version"`
}

type parcelRequest struct {
	ID              string         `json:"id"`
	LaycanPeriod    *periodRequest `json:"laycanPeriod"`
	ModeOfTransport string         `json:"modeOfTransport"`
	VesselIMO       int64          `json:"vesselIMO"`
	VesselName      string         `json:"vesselName"`
	LoadingPort     string         `json:"loadingPort"`
	DischargeArea   string         `json:"dischargeArea"`
	Inspector       string         `json:"inspector"`
	DeemedBLDate    string         `json:"deemedBLDate"`
	Quantity        float64        `json:"quantity"`
}

type periodRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type listResponse struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, attrs, err := decodeCargo(r)
	if err != nil {
		render.Error(w, err)
		return
	}
	cargo, err := h.service.Create(r.Context(), domain.Source(req.Source), req.SourceID, attrs)
	if err != nil {
		render.Error(w, err)
		return
	}
	render.JSON(w, http.StatusCreated, cargo)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	cargo, err := h.service.Get(r.Context(), chi.URLParam(r, "id"), sourceParam(r))
	if err != nil {
		render.Error(w, err)
		return
	}
	render.JSON(w, http.StatusOK, cargo)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := store.Query{
		Source:   domain.Source(r.URL.Query().Get("source")),
		SourceID: r.URL.Query().Get("sourceId"),
		CargoID:  r.URL.Query().Get("cargoId"),
	}
	opts := pagination(r)
	cargos, total, err := h.service.Find(r.Context(), query, opts)
	if err != nil {
		render.Error(w, err)
		return
	}
	if cargos == nil {
		cargos = []domain.Cargo{}
	}
	render.JSON(w, http.StatusOK, listResponse{
		Items: cargos,
		Total: total,
		Skip:  opts.Skip,
		Limit: opts.Limit,
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	req, attrs, err := decodeCargo(r)
	if err != nil {
		render.Error(w, err)
		return
	}
	cargo, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), domain.Source(req.Source), attrs)
	if err != nil {
		render.Error(w, err)
		return
	}
	render.JSON(w, http.StatusOK, cargo)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), sourceParam(r)); err != nil {
		render.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeCargo(r *http.Request) (cargoRequest, domain.CargoAttributes, error) {
	var req cargoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, domain.CargoAttributes{}, dErrors.New(dErrors.CodeBadRequest, "invalid request body")
	}
	attrs, err := req.attributes()
	if err != nil {
		return req, domain.CargoAttributes{}, err
	}
	return req, attrs, nil
}

func (req cargoRequest) attributes() (domain.CargoAttributes, error) {
	parcels := make([]domain.Parcel, 0, len(req.Parcels))
	for i, p := range req.Parcels {
		laycan, err := p.LaycanPeriod.period(fmt.Sprintf(".parcels[%d].laycanPeriod", i))
		if err != nil {
			return domain.CargoAttributes{}, err
		}
		deemedBL, err := parseDateField(p.DeemedBLDate, fmt.Sprintf(".parcels[%d].deemedBLDate", i))
		if err != nil {
			return domain.CargoAttributes{}, err
		}
		parcels = append(parcels, domain.Parcel{
			ID:              p.ID,
			LaycanPeriod:    laycan,
			ModeOfTransport: p.ModeOfTransport,
			VesselIMO:       p.VesselIMO,
			VesselName:      p.VesselName,
			LoadingPort:     p.LoadingPort,
			DischargeArea:   p.DischargeArea,
			Inspector:       p.Inspector,
			DeemedBLDate:    deemedBL,
			Quantity:        p.Quantity,
		})
	}
	return domain.CargoAttributes{
		CargoID: req.CargoID,
		Grade:   domain.Grade(req.Grade),
		Parcels: parcels,
		Version: req.Version,
	}, nil
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
		return nil, dErrors.WithErrors(dErrors.CodeBadRequest, "Invalid cargo", []dErrors.FieldError{{
			DataPath:   path,
			Keyword:    "format",
			Message:    fmt.Sprintf("should match format '%s'", domain.DateLayout),
			Params:     map[string]any{"format": "date"},
			SchemaPath: "#/format",
		}})
	}
	return date, nil
}

func sourceParam(r *http.Request) domain.Source {
	source := domain.Source(r.URL.Query().Get("source"))
	if source == "" {
		source = domain.SourceKomgo
	}
	return source
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
