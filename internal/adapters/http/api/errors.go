package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest  = errors.New("bad request")
	ErrMissingTeam = errors.New("missing team parameter")
	ErrBadSeason   = errors.New("season must be an integer")
)
