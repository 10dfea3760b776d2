// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// dateLayout is the display format for game dates. Formatting happens
// here, not in the engine, so the numeric contract stays testable.
const dateLayout = "2006-01-02"

// HighScoringHandler handles high-scoring game requests.
type HighScoringHandler struct {
	deps Dependencies
}

// NewHighScoringHandler creates a new high-scoring handler.
func NewHighScoringHandler(deps Dependencies) *HighScoringHandler {
	return &HighScoringHandler{deps: deps}
}

// gameResponse is the wire shape of one high-scoring game. Unknown
// dates serialize as an empty string.
type gameResponse struct {
	Date        string `json:"date"`
	HomeTeam    string `json:"home_team"`
	HomePoints  int    `json:"home_points"`
	AwayTeam    string `json:"away_team"`
	AwayPoints  int    `json:"away_points"`
	TotalPoints int    `json:"total"`
	Season      int    `json:"season"`
}

// HandleGetHighScoring handles GET /api/stats/high-scoring requests.
func (h *HighScoringHandler) HandleGetHighScoring(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rows := h.deps.HighScoring(r.Context())
	out := make([]gameResponse, 0, len(rows))
	for _, row := range rows {
		date := ""
		if !row.Date.IsZero() {
			date = row.Date.Format(dateLayout)
		}
		out = append(out, gameResponse{
			Date:        date,
			HomeTeam:    row.HomeTeam,
			HomePoints:  row.PointsHome,
			AwayTeam:    row.AwayTeam,
			AwayPoints:  row.PointsAway,
			TotalPoints: row.TotalPoints,
			Season:      row.Season,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
