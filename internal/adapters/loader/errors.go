package loader

import "errors"

// Sentinel kinds for loader errors.
var (
	ErrOpen      = errors.New("open data file failed")
	ErrRead      = errors.New("read data file failed")
	ErrBadHeader = errors.New("bad csv header")
)
