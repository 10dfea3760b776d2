// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// TrendHandler handles season trend requests.
type TrendHandler struct {
	deps Dependencies
}

// NewTrendHandler creates a new season trend handler.
func NewTrendHandler(deps Dependencies) *TrendHandler {
	return &TrendHandler{deps: deps}
}

// HandleGetSeasonTrend handles GET /api/stats/season-trend requests.
func (h *TrendHandler) HandleGetSeasonTrend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.SeasonTrend(r.Context()))
}
