package loader

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithMinSeason sets the earliest season-start year kept in the dataset.
func WithMinSeason(year int) Option {
	return func(l *Loader) {
		if year > 0 {
			l.minSeason = year
		}
	}
}

// WithWorkers sets the number of row-parsing goroutines.
func WithWorkers(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.workers = n
		}
	}
}
