// Package api declares HTTP contracts and route registration helpers.
//
// The handlers hold no domain logic: they parse parameters, call the
// service, and serialize the typed results. All statistics semantics
// live in the stats engine.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hoopboard/hoopboard/internal/domain/stats"
)

// Result aliases keep handler signatures readable without re-declaring
// the engine's result shapes.
type (
	Overview   = stats.Overview
	SeasonRow  = stats.SeasonRow
	RankingRow = stats.RankingRow
	GameRow    = stats.GameRow
	TeamDetail = stats.TeamDetail
	Comparison = stats.Comparison
)

// Dependencies bundles what the HTTP handlers need from the service.
// Using an interface keeps the handler layer loosely coupled to the
// implementation in internal/app.
type Dependencies interface {
	Overview(ctx context.Context) (Overview, error)
	SeasonTrend(ctx context.Context) []SeasonRow
	TeamRankings(ctx context.Context, season *int) []RankingRow
	HighScoring(ctx context.Context) []GameRow
	TeamDetail(ctx context.Context, team string) TeamDetail
	PlayoffsVsRegular(ctx context.Context) Comparison

	// Filters exposes the distinct seasons and teams for the dashboard
	// dropdowns.
	Filters(ctx context.Context) (seasons []int, teams []string)

	// DatasetSize reports how many games are loaded, for health output.
	DatasetSize(ctx context.Context) int
}

// Server wires HTTP routes for the statistics API.
type Server struct {
	healthHandler      *HealthHandler
	dashboardHandler   *dashboardHandler
	filtersHandler     *FiltersHandler
	overviewHandler    *OverviewHandler
	trendHandler       *TrendHandler
	rankingsHandler    *RankingsHandler
	highScoringHandler *HighScoringHandler
	teamDetailHandler  *TeamDetailHandler
	comparisonHandler  *ComparisonHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(deps),
		dashboardHandler:   newDashboardHandler(),
		filtersHandler:     NewFiltersHandler(deps),
		overviewHandler:    NewOverviewHandler(deps),
		trendHandler:       NewTrendHandler(deps),
		rankingsHandler:    NewRankingsHandler(deps),
		highScoringHandler: NewHighScoringHandler(deps),
		teamDetailHandler:  NewTeamDetailHandler(deps),
		comparisonHandler:  NewComparisonHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/api/filters", MetricsMiddleware(s.filtersHandler.HandleGetFilters, "filters"))
	mux.HandleFunc("/api/stats/overview", MetricsMiddleware(s.overviewHandler.HandleGetOverview, "overview"))
	mux.HandleFunc("/api/stats/season-trend", MetricsMiddleware(s.trendHandler.HandleGetSeasonTrend, "season_trend"))
	mux.HandleFunc("/api/stats/team-rankings", MetricsMiddleware(s.rankingsHandler.HandleGetRankings, "team_rankings"))
	mux.HandleFunc("/api/stats/high-scoring", MetricsMiddleware(s.highScoringHandler.HandleGetHighScoring, "high_scoring"))
	mux.HandleFunc("/api/stats/team-detail", MetricsMiddleware(s.teamDetailHandler.HandleGetTeamDetail, "team_detail"))
	mux.HandleFunc("/api/stats/playoffs-vs-regular", MetricsMiddleware(s.comparisonHandler.HandleGetComparison, "playoffs_vs_regular"))
	mux.HandleFunc("/", s.dashboardHandler.HandleDashboard)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
