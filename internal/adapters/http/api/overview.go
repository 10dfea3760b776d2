// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	"github.com/hoopboard/hoopboard/internal/domain/stats"
)

// OverviewHandler handles overview statistics requests.
type OverviewHandler struct {
	deps Dependencies
}

// NewOverviewHandler creates a new overview handler.
func NewOverviewHandler(deps Dependencies) *OverviewHandler {
	return &OverviewHandler{deps: deps}
}

// HandleGetOverview handles GET /api/stats/overview requests.
func (h *OverviewHandler) HandleGetOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	overview, err := h.deps.Overview(r.Context())
	if err != nil {
		if errors.Is(err, stats.ErrEmptyDataset) {
			writeError(w, http.StatusServiceUnavailable, "empty_dataset", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}
