package httpadapter

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/port"
)

// Handler is the inbound HTTP adapter: the trigger and reporting seam for
// the bidding engine. The operator dashboard lives elsewhere; this surface
// only starts runs and serves their results.
type Handler struct {
	engine port.BiddingEngine
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts an
// engine implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(engine port.BiddingEngine, logger *slog.Logger) *Handler {
	h := &Handler{engine: engine, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/engine/run", h.handleEngineRun)
		r.Get("/engine/runs/latest", h.handleLatestRun)
		r.Get("/profiles", h.handleProfiles)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
