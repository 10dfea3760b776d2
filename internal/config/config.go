// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers an optional YAML file and env vars on top.
// - External errors must be wrapped via this package's error kinds.
package config

import "runtime"

// Default configuration constants.
const (
	defaultAddr             = ":8000"
	defaultDataFile         = "games.csv"
	defaultMinSeason        = 2000
	defaultRankingSize      = 15
	defaultHighScoringSize  = 10
	defaultTeamSeasonWindow = 10
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// DataFile points at the games CSV loaded at startup.
	DataFile string `koanf:"data_file"`

	// MinSeason is the earliest season-start year kept in the dataset.
	MinSeason int `koanf:"min_season"`

	// RankingSize caps the team-rankings listing.
	RankingSize int `koanf:"ranking_size"`

	// HighScoringSize caps the high-scoring games listing.
	HighScoringSize int `koanf:"high_scoring_size"`

	// TeamSeasonWindow is how many recent seasons team detail keeps.
	TeamSeasonWindow int `koanf:"team_season_window"`

	// ParseWorkers sets the CSV parse pool size.
	ParseWorkers int `koanf:"parse_workers"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             defaultAddr,
		DataFile:         defaultDataFile,
		MinSeason:        defaultMinSeason,
		RankingSize:      defaultRankingSize,
		HighScoringSize:  defaultHighScoringSize,
		TeamSeasonWindow: defaultTeamSeasonWindow,
		ParseWorkers:     runtime.NumCPU(),
	}
}
