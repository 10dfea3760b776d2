// Package app provides the core business service that implements the
// dependencies required by the HTTP API.
package app

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/hoopboard/hoopboard/internal/adapters/loader"
	"github.com/hoopboard/hoopboard/internal/domain/model"
	"github.com/hoopboard/hoopboard/internal/domain/stats"
	"github.com/hoopboard/hoopboard/pkg/logger"
)

// Service loads the dataset once at startup and answers statistics
// queries against it. The dataset is never replaced afterwards, so all
// query methods are safe for concurrent use.
type Service struct {
	mu sync.RWMutex

	// Configuration
	dataFile        string
	minSeason       int
	rankingSize     int
	highScoringSize int
	seasonWindow    int
	parseWorkers    int

	// State
	dataset *model.Dataset
	engine  *stats.Engine
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDataFile sets the games CSV path.
func WithDataFile(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dataFile = path
		}
	}
}

// WithMinSeason sets the earliest season-start year kept.
func WithMinSeason(year int) Option {
	return func(s *Service) {
		if year > 0 {
			s.minSeason = year
		}
	}
}

// WithRankingSize sets the team-rankings listing size.
func WithRankingSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.rankingSize = n
		}
	}
}

// WithHighScoringSize sets the high-scoring listing size.
func WithHighScoringSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.highScoringSize = n
		}
	}
}

// WithSeasonWindow sets how many recent seasons team detail keeps.
func WithSeasonWindow(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.seasonWindow = n
		}
	}
}

// WithParseWorkers sets the CSV parse pool size.
func WithParseWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.parseWorkers = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dataFile:        "games.csv",
		minSeason:       2000,
		rankingSize:     15,
		highScoringSize: 10,
		seasonWindow:    10,
		parseWorkers:    runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the dataset and builds the statistics engine. It is the
// only operation that touches the filesystem; everything after it is
// in-memory.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "loading game dataset", logger.String("file", s.dataFile))
	start := time.Now()

	ds, err := loader.New(
		loader.WithMinSeason(s.minSeason),
		loader.WithWorkers(s.parseWorkers),
	).Load(ctx, s.dataFile)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	s.dataset = ds
	s.engine = stats.New(ds,
		stats.WithRankingSize(s.rankingSize),
		stats.WithHighScoringSize(s.highScoringSize),
		stats.WithSeasonWindow(s.seasonWindow),
	)
	s.started = true

	s.logger.Info(ctx, "dataset loaded",
		logger.Int("records", ds.Len()),
		logger.Int("seasons", len(ds.Seasons())),
		logger.Int("teams", len(ds.Teams())),
		logger.Any("elapsed", time.Since(start)),
	)
	return nil
}

// Stop releases nothing today but keeps the lifecycle symmetric for
// callers that defer it.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
}

func (s *Service) statsEngine() *stats.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// Overview implements api.Dependencies.
func (s *Service) Overview(_ context.Context) (stats.Overview, error) {
	return s.statsEngine().Overview()
}

// SeasonTrend implements api.Dependencies.
func (s *Service) SeasonTrend(_ context.Context) []stats.SeasonRow {
	return s.statsEngine().SeasonTrend()
}

// TeamRankings implements api.Dependencies.
func (s *Service) TeamRankings(_ context.Context, season *int) []stats.RankingRow {
	return s.statsEngine().TeamRankings(season)
}

// HighScoring implements api.Dependencies.
func (s *Service) HighScoring(_ context.Context) []stats.GameRow {
	return s.statsEngine().HighScoring()
}

// TeamDetail implements api.Dependencies.
func (s *Service) TeamDetail(_ context.Context, team string) stats.TeamDetail {
	return s.statsEngine().TeamDetail(team)
}

// PlayoffsVsRegular implements api.Dependencies.
func (s *Service) PlayoffsVsRegular(_ context.Context) stats.Comparison {
	return s.statsEngine().PlayoffsVsRegular()
}

// Filters implements api.Dependencies.
func (s *Service) Filters(_ context.Context) ([]int, []string) {
	ds := s.statsEngine().Dataset()
	return ds.Seasons(), ds.Teams()
}

// DatasetSize implements api.Dependencies.
func (s *Service) DatasetSize(_ context.Context) int {
	e := s.statsEngine()
	if e == nil {
		return 0
	}
	return e.Dataset().Len()
}
