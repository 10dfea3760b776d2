// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// ComparisonHandler handles playoffs-vs-regular requests.
type ComparisonHandler struct {
	deps Dependencies
}

// NewComparisonHandler creates a new comparison handler.
func NewComparisonHandler(deps Dependencies) *ComparisonHandler {
	return &ComparisonHandler{deps: deps}
}

// HandleGetComparison handles GET /api/stats/playoffs-vs-regular requests.
func (h *ComparisonHandler) HandleGetComparison(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.PlayoffsVsRegular(r.Context()))
}
