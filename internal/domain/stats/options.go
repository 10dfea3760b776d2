package stats

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithRankingSize sets how many teams TeamRankings returns.
func WithRankingSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.rankingSize = n
		}
	}
}

// WithHighScoringSize sets how many games HighScoring returns.
func WithHighScoringSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.highScoringSize = n
		}
	}
}

// WithSeasonWindow sets how many recent seasons TeamDetail keeps.
func WithSeasonWindow(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.seasonWindow = n
		}
	}
}
