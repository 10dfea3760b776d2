// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// TeamDetailHandler handles per-team statistics requests.
type TeamDetailHandler struct {
	deps Dependencies
}

// NewTeamDetailHandler creates a new team detail handler.
func NewTeamDetailHandler(deps Dependencies) *TeamDetailHandler {
	return &TeamDetailHandler{deps: deps}
}

// HandleGetTeamDetail handles GET /api/stats/team-detail?team=X requests.
// A team absent from the dataset is a valid query and returns a zero
// record; only a missing parameter is a client error.
func (h *TeamDetailHandler) HandleGetTeamDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	team := r.URL.Query().Get("team")
	if team == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingTeam)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.TeamDetail(r.Context(), team))
}
