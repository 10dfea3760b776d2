// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"sort"
)

// FiltersHandler serves the dashboard filter values.
type FiltersHandler struct {
	deps Dependencies
}

// NewFiltersHandler creates a new filters handler.
func NewFiltersHandler(deps Dependencies) *FiltersHandler {
	return &FiltersHandler{deps: deps}
}

type filtersResponse struct {
	Seasons []int    `json:"seasons"`
	Teams   []string `json:"teams"`
}

// HandleGetFilters handles GET /api/filters requests. Seasons come back
// newest first for the dropdown; teams alphabetically.
func (h *FiltersHandler) HandleGetFilters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	seasons, teams := h.deps.Filters(r.Context())
	sort.Sort(sort.Reverse(sort.IntSlice(seasons)))
	writeJSON(w, http.StatusOK, filtersResponse{Seasons: seasons, Teams: teams})
}
