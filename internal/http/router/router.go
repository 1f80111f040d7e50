package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bennett-mcdowell/F25-Team03/internal/http/handlers"
	"github.com/bennett-mcdowell/F25-Team03/internal/http/middleware"
	"github.com/bennett-mcdowell/F25-Team03/internal/http/middleware/ratelimit"
	"github.com/bennett-mcdowell/F25-Team03/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
func New(logger logx.Logger, h *handlers.Handlers, lh *handlers.LedgerHandler, rl *ratelimit.Middleware) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(5 * time.Second))
	r.Use(middleware.Observability(logger))
	if rl != nil {
		r.Use(rl.Handler())
	}

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/driver/sponsors", lh.Sponsors)
	r.Get("/driver/alerts", lh.Alerts)
	r.Post("/purchase", lh.Purchase)

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", lh.ListOrders)
		r.Get("/{id}", lh.GetOrder)
		r.Post("/{id}/cancel", lh.Cancel)
		r.Put("/{id}/status", lh.UpdateStatus)
	})

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
