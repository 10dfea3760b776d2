// Package model contains domain models passed between layers.
package model

import (
	"sort"
	"time"
)

// Game represents one played game from the historical record.
// A zero Date means the source row carried no parseable date.
type Game struct {
	ID         string    // unique id, stable across runs
	Date       time.Time // game date; zero when unknown
	Season     int       // season-start year
	HomeTeam   string    // home team identifier
	AwayTeam   string    // away team identifier
	PointsHome int       // home final score
	PointsAway int       // away final score
	Regular    bool      // true regular season, false playoffs
}

// TotalPoints returns the combined score of both teams. It is always
// derived from the two score fields rather than stored.
func (g Game) TotalPoints() int {
	return g.PointsHome + g.PointsAway
}

// Winner returns the winning team's identifier. A tied game has no
// winner and reports ok=false; ties still count as games played for
// both teams but as a win for neither.
func (g Game) Winner() (team string, ok bool) {
	switch {
	case g.PointsHome > g.PointsAway:
		return g.HomeTeam, true
	case g.PointsAway > g.PointsHome:
		return g.AwayTeam, true
	default:
		return "", false
	}
}

// Dataset is an immutable, in-memory collection of games. It is built
// once by the loader at process start and never mutated afterwards, so
// any number of queries may read it concurrently without coordination.
type Dataset struct {
	games   []Game
	seasons []int
	teams   []string
}

// NewDataset builds a Dataset from the given games. The slice is copied
// so later modifications by the caller cannot leak into the Dataset.
func NewDataset(games []Game) *Dataset {
	owned := make([]Game, len(games))
	copy(owned, games)

	seasonSet := make(map[int]struct{})
	teamSet := make(map[string]struct{})
	for _, g := range owned {
		seasonSet[g.Season] = struct{}{}
		teamSet[g.HomeTeam] = struct{}{}
		teamSet[g.AwayTeam] = struct{}{}
	}

	seasons := make([]int, 0, len(seasonSet))
	for s := range seasonSet {
		seasons = append(seasons, s)
	}
	sort.Ints(seasons)

	teams := make([]string, 0, len(teamSet))
	for t := range teamSet {
		teams = append(teams, t)
	}
	sort.Strings(teams)

	return &Dataset{games: owned, seasons: seasons, teams: teams}
}

// Len returns the number of games in the dataset.
func (d *Dataset) Len() int {
	return len(d.games)
}

// Games returns the underlying game slice. Callers must treat it as
// read-only; the Dataset shares it to avoid copying on every query.
func (d *Dataset) Games() []Game {
	return d.games
}

// Seasons returns the distinct seasons present, ascending.
func (d *Dataset) Seasons() []int {
	out := make([]int, len(d.seasons))
	copy(out, d.seasons)
	return out
}

// Teams returns the distinct team identifiers present, ascending.
func (d *Dataset) Teams() []string {
	out := make([]string, len(d.teams))
	copy(out, d.teams)
	return out
}
