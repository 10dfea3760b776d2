// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
)

// RankingsHandler handles team ranking requests.
type RankingsHandler struct {
	deps Dependencies
}

// NewRankingsHandler creates a new rankings handler.
func NewRankingsHandler(deps Dependencies) *RankingsHandler {
	return &RankingsHandler{deps: deps}
}

// HandleGetRankings handles GET /api/stats/team-rankings?season=N requests.
// An absent season parameter ranks across all seasons; a season with no
// games is a valid filter and yields an empty list.
func (h *RankingsHandler) HandleGetRankings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	var season *int
	if raw := r.URL.Query().Get("season"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadSeason)
			return
		}
		season = &n
	}
	writeJSON(w, http.StatusOK, h.deps.TeamRankings(r.Context(), season))
}
