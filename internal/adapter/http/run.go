package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/port"
)

// handleEngineRun triggers one engine run and returns its summary. The run
// mode comes from the `mode` query parameter and defaults to "full";
// "report_only" stops after profitability. Runs execute synchronously: the
// engine supports at most one run per keyword pool at a time, and the
// external scheduler is expected to respect that. Unknown modes produce
// HTTP 400; a fatal run error produces HTTP 500.
func (h *Handler) handleEngineRun(w http.ResponseWriter, r *http.Request) {
	mode := port.RunMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = port.ModeFull
	}
	if mode != port.ModeFull && mode != port.ModeReportOnly {
		http.Error(w, "invalid mode", http.StatusBadRequest)
		return
	}

	summary, err := h.engine.Run(r.Context(), mode)
	if err != nil {
		h.logger.Error("engine run failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(summary); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleLatestRun returns the most recent run summary, or HTTP 404 when no
// run has been recorded yet.
func (h *Handler) handleLatestRun(w http.ResponseWriter, r *http.Request) {
	summary, err := h.engine.LatestRun(r.Context())
	if err != nil {
		h.logger.Error("latest run error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if summary == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(summary); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
