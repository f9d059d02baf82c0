package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the API routes. metricsHandler is mounted at /metrics when not nil.
func NewRouter(householdHandler *HouseholdHandler, mw *Middleware, metricsHandler http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", householdHandler.Health)
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.RateLimit)

		r.Get("/currencies", householdHandler.Currencies)
		r.Post("/money/convert", householdHandler.Convert)
		r.Post("/jobs/income", householdHandler.Income)
		r.Post("/households/evaluate", householdHandler.EvaluateHousehold)
	})

	return r
}
