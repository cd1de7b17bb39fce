package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ceverett10/experience-marketplace-platform-sub001/internal/core/domain"
)

// profileView is the JSON shape served for one site profile.
type profileView struct {
	SiteID           int64     `json:"site_id"`
	SiteName         string    `json:"site_name"`
	AOV              float64   `json:"aov"`
	CommissionPct    float64   `json:"commission_pct"`
	ConversionRate   float64   `json:"conversion_rate"`
	RevenuePerClick  float64   `json:"revenue_per_click"`
	MaxProfitableCPC float64   `json:"max_profitable_cpc"`
	AOVSource        string    `json:"aov_source"`
	CommissionSource string    `json:"commission_source"`
	ConversionSource string    `json:"conversion_source"`
	BookingSamples   int       `json:"booking_samples"`
	Sessions         int       `json:"sessions"`
	ComputedAt       time.Time `json:"computed_at"`
}

// handleProfiles serves the most recently computed financial profiles.
func (h *Handler) handleProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.engine.Profiles(r.Context())
	if err != nil {
		h.logger.Error("profiles error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	views := make([]profileView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, toProfileView(p))
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(views); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func toProfileView(p domain.SiteProfile) profileView {
	return profileView{
		SiteID:           p.SiteID,
		SiteName:         p.SiteName,
		AOV:              p.AOV,
		CommissionPct:    p.CommissionPct,
		ConversionRate:   p.ConversionRate,
		RevenuePerClick:  p.RevenuePerClick,
		MaxProfitableCPC: p.MaxProfitableCPC,
		AOVSource:        string(p.Quality.AOVSource),
		CommissionSource: string(p.Quality.CommissionSource),
		ConversionSource: string(p.Quality.ConversionSource),
		BookingSamples:   p.Quality.BookingSamples,
		Sessions:         p.Quality.Sessions,
		ComputedAt:       p.ComputedAt,
	}
}
