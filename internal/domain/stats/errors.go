package stats

import "errors"

// Sentinel kinds for statistics errors.
var (
	ErrEmptyDataset = errors.New("empty dataset")
)
