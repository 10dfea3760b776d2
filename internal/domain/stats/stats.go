// Package stats implements the statistics engine: a set of pure,
// synchronous queries over an immutable game dataset. No query mutates
// shared state, so callers may run any number of them concurrently.
package stats

import (
	"sort"
	"time"

	"github.com/hoopboard/hoopboard/internal/domain/model"
	"github.com/hoopboard/hoopboard/pkg/metrics"
)

// Default query size constants.
const (
	defaultRankingSize     = 15
	defaultHighScoringSize = 10
	defaultSeasonWindow    = 10
	percentScale           = 100
)

// Overview summarizes the full dataset.
type Overview struct {
	TotalGames    int     `json:"total_games"`
	AvgHomePoints float64 `json:"avg_home_points"`
	AvgAwayPoints float64 `json:"avg_away_points"`
	HomeWinRate   float64 `json:"home_win_rate"`
}

// SeasonRow is one season's scoring summary.
type SeasonRow struct {
	Season   int     `json:"season"`
	AvgHome  float64 `json:"avg_home"`
	AvgAway  float64 `json:"avg_away"`
	AvgTotal float64 `json:"avg_total"`
	Games    int     `json:"games"`
}

// RankingRow is one team's entry in the win ranking.
type RankingRow struct {
	Team    string  `json:"team"`
	Wins    int     `json:"wins"`
	Games   int     `json:"games"`
	WinRate float64 `json:"win_rate"`
}

// GameRow is one game in the high-scoring listing. Date formatting is
// left to the presentation layer; a zero Date means unknown.
type GameRow struct {
	Date        time.Time
	HomeTeam    string
	AwayTeam    string
	PointsHome  int
	PointsAway  int
	TotalPoints int
	Season      int
}

// TeamSeason is one season of a team's per-season breakdown.
type TeamSeason struct {
	Season  int     `json:"season"`
	Wins    int     `json:"wins"`
	Games   int     `json:"games"`
	WinRate float64 `json:"win_rate"`
}

// TeamDetail aggregates a single team's record.
type TeamDetail struct {
	Team      string       `json:"team"`
	Wins      int          `json:"wins"`
	Games     int          `json:"games"`
	WinRate   float64      `json:"win_rate"`
	AvgPoints float64      `json:"avg_points"`
	Seasons   []TeamSeason `json:"seasons"`
}

// PartitionStats summarizes one game-type partition.
type PartitionStats struct {
	Games       int     `json:"games"`
	AvgTotal    float64 `json:"avg_total"`
	AvgHome     float64 `json:"avg_home"`
	AvgAway     float64 `json:"avg_away"`
	HomeWinRate float64 `json:"home_win_rate"`
}

// Comparison pairs the regular-season and playoff partitions.
type Comparison struct {
	Regular  PartitionStats `json:"regular"`
	Playoffs PartitionStats `json:"playoffs"`
}

// Engine runs statistics queries against a fixed dataset.
type Engine struct {
	ds              *model.Dataset
	rankingSize     int
	highScoringSize int
	seasonWindow    int
}

// New creates an Engine for the given dataset with configuration options.
func New(ds *model.Dataset, opts ...Option) *Engine {
	e := &Engine{
		ds:              ds,
		rankingSize:     defaultRankingSize,
		highScoringSize: defaultHighScoringSize,
		seasonWindow:    defaultSeasonWindow,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dataset returns the dataset the engine was built over.
func (e *Engine) Dataset() *model.Dataset {
	return e.ds
}

// Overview computes dataset-wide totals and averages. An empty dataset
// is a hard error here: there is no meaningful average to report, and
// silently returning zeros would mask a broken load.
func (e *Engine) Overview() (Overview, error) {
	defer observe("overview", time.Now())

	games := e.ds.Games()
	if len(games) == 0 {
		return Overview{}, ErrEmptyDataset
	}

	var sumHome, sumAway, homeWins int
	for _, g := range games {
		sumHome += g.PointsHome
		sumAway += g.PointsAway
		if g.PointsHome > g.PointsAway {
			homeWins++
		}
	}

	n := float64(len(games))
	return Overview{
		TotalGames:    len(games),
		AvgHomePoints: float64(sumHome) / n,
		AvgAwayPoints: float64(sumAway) / n,
		HomeWinRate:   float64(homeWins) / n * percentScale,
	}, nil
}

// SeasonTrend groups games by season and averages the scoring columns.
// Rows are ordered by season ascending; only seasons present in the
// dataset appear, each therefore with games > 0.
func (e *Engine) SeasonTrend() []SeasonRow {
	defer observe("season_trend", time.Now())

	type acc struct {
		home, away, total, games int
	}
	bySeason := make(map[int]*acc)
	for _, g := range e.ds.Games() {
		a := bySeason[g.Season]
		if a == nil {
			a = &acc{}
			bySeason[g.Season] = a
		}
		a.home += g.PointsHome
		a.away += g.PointsAway
		a.total += g.TotalPoints()
		a.games++
	}

	seasons := make([]int, 0, len(bySeason))
	for s := range bySeason {
		seasons = append(seasons, s)
	}
	sort.Ints(seasons)

	rows := make([]SeasonRow, 0, len(seasons))
	for _, s := range seasons {
		a := bySeason[s]
		n := float64(a.games)
		rows = append(rows, SeasonRow{
			Season:   s,
			AvgHome:  float64(a.home) / n,
			AvgAway:  float64(a.away) / n,
			AvgTotal: float64(a.total) / n,
			Games:    a.games,
		})
	}
	return rows
}

// TeamRankings returns the top teams by win count, optionally restricted
// to a single season. Only teams with at least one win are ranked. The
// order is total: wins descending, then team id ascending, so repeated
// runs over the same dataset always produce the same list. A season with
// no matching games yields an empty list, not an error.
func (e *Engine) TeamRankings(season *int) []RankingRow {
	defer observe("team_rankings", time.Now())

	wins := make(map[string]int)
	appearances := make(map[string]int)
	for _, g := range e.ds.Games() {
		if season != nil && g.Season != *season {
			continue
		}
		appearances[g.HomeTeam]++
		appearances[g.AwayTeam]++
		if w, ok := g.Winner(); ok {
			wins[w]++
		}
	}

	teams := make([]string, 0, len(wins))
	for t := range wins {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool {
		if wins[teams[i]] != wins[teams[j]] {
			return wins[teams[i]] > wins[teams[j]]
		}
		return teams[i] < teams[j]
	})
	if len(teams) > e.rankingSize {
		teams = teams[:e.rankingSize]
	}

	rows := make([]RankingRow, 0, len(teams))
	for _, t := range teams {
		games := appearances[t]
		rate := 0.0
		if games > 0 {
			rate = float64(wins[t]) / float64(games) * percentScale
		}
		rows = append(rows, RankingRow{
			Team:    t,
			Wins:    wins[t],
			Games:   games,
			WinRate: rate,
		})
	}
	return rows
}

// HighScoring returns the highest-combined-score games, ordered by total
// points descending. Ties break on earliest date first (unknown dates
// sort after known ones), then on game id, keeping the listing stable.
// Datasets smaller than the requested size return every game they have.
func (e *Engine) HighScoring() []GameRow {
	defer observe("high_scoring", time.Now())

	games := e.ds.Games()
	idx := make([]int, len(games))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		gi, gj := games[idx[a]], games[idx[b]]
		if gi.TotalPoints() != gj.TotalPoints() {
			return gi.TotalPoints() > gj.TotalPoints()
		}
		switch {
		case gi.Date.IsZero() != gj.Date.IsZero():
			return gj.Date.IsZero()
		case !gi.Date.Equal(gj.Date):
			return gi.Date.Before(gj.Date)
		default:
			return gi.ID < gj.ID
		}
	})
	if len(idx) > e.highScoringSize {
		idx = idx[:e.highScoringSize]
	}

	rows := make([]GameRow, 0, len(idx))
	for _, i := range idx {
		g := games[i]
		rows = append(rows, GameRow{
			Date:        g.Date,
			HomeTeam:    g.HomeTeam,
			AwayTeam:    g.AwayTeam,
			PointsHome:  g.PointsHome,
			PointsAway:  g.PointsAway,
			TotalPoints: g.TotalPoints(),
			Season:      g.Season,
		})
	}
	return rows
}

// TeamDetail aggregates one team's record across home and away games.
// Average points is the weighted mean of the team's home and away
// scoring averages, weighted by game counts, computed as points scored
// over games played. The win rate uses a saturating max(games,1)
// denominator, so a team absent from the dataset reports a zero record
// rather than an error. The per-season breakdown is built season
// ascending, omits seasons without games, and keeps the most recent
// window.
func (e *Engine) TeamDetail(team string) TeamDetail {
	defer observe("team_detail", time.Now())

	type record struct {
		wins, games, points int
	}
	var total record
	bySeason := make(map[int]*record)

	for _, g := range e.ds.Games() {
		var scored int
		switch team {
		case g.HomeTeam:
			scored = g.PointsHome
		case g.AwayTeam:
			scored = g.PointsAway
		default:
			continue
		}
		won := 0
		if w, ok := g.Winner(); ok && w == team {
			won = 1
		}

		total.games++
		total.points += scored
		total.wins += won

		r := bySeason[g.Season]
		if r == nil {
			r = &record{}
			bySeason[g.Season] = r
		}
		r.games++
		r.wins += won
	}

	seasons := make([]TeamSeason, 0, len(bySeason))
	for _, s := range e.ds.Seasons() {
		r := bySeason[s]
		if r == nil || r.games == 0 {
			continue
		}
		seasons = append(seasons, TeamSeason{
			Season:  s,
			Wins:    r.wins,
			Games:   r.games,
			WinRate: float64(r.wins) / float64(r.games) * percentScale,
		})
	}
	if len(seasons) > e.seasonWindow {
		seasons = seasons[len(seasons)-e.seasonWindow:]
	}

	denom := float64(max(total.games, 1))
	return TeamDetail{
		Team:      team,
		Wins:      total.wins,
		Games:     total.games,
		WinRate:   float64(total.wins) / denom * percentScale,
		AvgPoints: float64(total.points) / denom,
		Seasons:   seasons,
	}
}

// PlayoffsVsRegular partitions the dataset by game type and summarizes
// each side independently. Win rates use a max(games,1) denominator so
// an empty playoffs partition yields zeros instead of a failure.
func (e *Engine) PlayoffsVsRegular() Comparison {
	defer observe("playoffs_vs_regular", time.Now())

	type acc struct {
		games, total, home, away, homeWins int
	}
	summarize := func(a acc) PartitionStats {
		denom := float64(max(a.games, 1))
		return PartitionStats{
			Games:       a.games,
			AvgTotal:    float64(a.total) / denom,
			AvgHome:     float64(a.home) / denom,
			AvgAway:     float64(a.away) / denom,
			HomeWinRate: float64(a.homeWins) / denom * percentScale,
		}
	}

	var regular, playoffs acc
	for _, g := range e.ds.Games() {
		a := &playoffs
		if g.Regular {
			a = &regular
		}
		a.games++
		a.total += g.TotalPoints()
		a.home += g.PointsHome
		a.away += g.PointsAway
		if g.PointsHome > g.PointsAway {
			a.homeWins++
		}
	}

	return Comparison{
		Regular:  summarize(regular),
		Playoffs: summarize(playoffs),
	}
}

// observe records query latency for monitoring.
func observe(query string, start time.Time) {
	metrics.RecordQueryDuration(query, float64(time.Since(start).Milliseconds()))
}
