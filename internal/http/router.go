// Package http assembles the service's HTTP surface: the versioned API,
// health and metrics.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cargohandler "tradecargo/internal/cargo/handler"
	"tradecargo/internal/platform/metrics"
	"tradecargo/internal/platform/middleware"
	"tradecargo/internal/platform/render"
	tradehandler "tradecargo/internal/trade/handler"
)

// Deps carries everything the router mounts. HealthChecks run per /healthz
// call; any failure turns the endpoint 503.
type Deps struct {
	Trades    *tradehandler.Handler
	Cargos    *cargohandler.Handler
	Validator middleware.JWTValidator
	Metrics   *metrics.Metrics
	Logger    *slog.Logger

	HealthChecks map[string]func() error
}

// NewRouter builds the chi router with the standard middleware chain. The API
// sits behind JWT auth; health and metrics stay open for the platform.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Latency(deps.Metrics))

	r.Get("/healthz", healthHandler(deps.HealthChecks))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(api chi.Router) {
		api.Use(middleware.ContentTypeJSON)
		api.Use(middleware.RequireAuth(deps.Validator, deps.Logger))
		deps.Trades.Routes(api)
		deps.Cargos.Routes(api)
	})

	return r
}

func healthHandler(checks map[string]func() error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		result := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(); err != nil {
				status = http.StatusServiceUnavailable
				result[name] = err.Error()
				continue
			}
			result[name] = "ok"
		}
		render.JSON(w, status, result)
	}
}
