// Package loader reads the historical games CSV and builds the
// immutable dataset the statistics engine runs against. Parsing is the
// only part of startup proportional to the source size, so rows are
// coerced on a bounded worker pool fed from a single reader goroutine.
package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hoopboard/hoopboard/internal/domain/model"
	"github.com/hoopboard/hoopboard/pkg/metrics"
)

// Default loader configuration constants.
const (
	defaultMinSeason = 2000
	defaultWorkers   = 4
	rowBuffer        = 1024
)

// Source column names. The file is header-addressed, so column order
// does not matter.
const (
	colID        = "game_id"
	colDate      = "datetime"
	colSeason    = "seasonStartYear"
	colHomeTeam  = "homeTeam"
	colAwayTeam  = "awayTeam"
	colHomePts   = "pointsHome"
	colAwayPts   = "pointsAway"
	colIsRegular = "isRegular"
)

// dateLayouts are tried in order; rows matching none keep a zero date.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// indexedRow carries one raw CSV row plus its position, so the parsed
// dataset keeps source order regardless of which worker finished first.
type indexedRow struct {
	index  int
	fields []string
}

// parsedRow is a worker's output for one row. ok is false for rows the
// loader drops (pre-cutoff seasons, malformed scores).
type parsedRow struct {
	game model.Game
	ok   bool
}

// Loader builds datasets from CSV sources.
type Loader struct {
	minSeason int
	workers   int
}

// New creates a Loader with configuration options.
func New(opts ...Option) *Loader {
	l := &Loader{
		minSeason: defaultMinSeason,
		workers:   defaultWorkers,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the CSV at path and returns the dataset. The returned
// dataset contains only rows at or after the season cutoff, in source
// order, each with a non-empty id.
func (l *Loader) Load(ctx context.Context, path string) (*model.Dataset, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer func() { _ = f.Close() }()

	ds, err := l.load(ctx, f)
	if err != nil {
		return nil, err
	}

	metrics.RecordLoadDuration(float64(time.Since(start).Milliseconds()))
	metrics.UpdateDatasetSize(ds.Len(), len(ds.Seasons()), len(ds.Teams()))
	return ds, nil
}

func (l *Loader) load(ctx context.Context, r io.Reader) (*model.Dataset, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	rows := make(chan indexedRow, rowBuffer)
	var results []parsedRow
	var mu sync.Mutex // guards growth of results; slots are index-owned

	grow := func(n int) {
		mu.Lock()
		for len(results) < n {
			results = append(results, parsedRow{})
		}
		mu.Unlock()
	}

	var wg sync.WaitGroup
	for w := 0; w < l.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				parsed := l.parseRow(cols, row.fields)
				mu.Lock()
				results[row.index] = parsed
				mu.Unlock()
			}
		}()
	}

	var readErr error
	count := 0
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			readErr = fmt.Errorf("%w: row %d: %v", ErrRead, count+1, err)
			break
		}
		grow(count + 1)
		select {
		case rows <- indexedRow{index: count, fields: fields}:
			count++
		case <-ctx.Done():
			readErr = ctx.Err()
		}
		if readErr != nil {
			break
		}
	}
	close(rows)
	wg.Wait()

	if readErr != nil {
		return nil, readErr
	}

	games := make([]model.Game, 0, count)
	for _, p := range results[:count] {
		if p.ok {
			games = append(games, p.game)
		}
	}
	return model.NewDataset(games), nil
}

// parseRow coerces one raw row. Unparseable dates are kept with a zero
// date; everything else malformed drops the row.
func (l *Loader) parseRow(cols map[string]int, fields []string) parsedRow {
	get := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	season, err := strconv.Atoi(get(colSeason))
	if err != nil {
		metrics.RecordRowRejected("season")
		return parsedRow{}
	}
	if season < l.minSeason {
		metrics.RecordRowRejected("pre_cutoff")
		return parsedRow{}
	}

	home, away := get(colHomeTeam), get(colAwayTeam)
	if home == "" || away == "" {
		metrics.RecordRowRejected("team")
		return parsedRow{}
	}

	ptsHome, errH := strconv.Atoi(get(colHomePts))
	ptsAway, errA := strconv.Atoi(get(colAwayPts))
	if errH != nil || errA != nil || ptsHome < 0 || ptsAway < 0 {
		metrics.RecordRowRejected("score")
		return parsedRow{}
	}

	regular, err := parseFlag(get(colIsRegular))
	if err != nil {
		metrics.RecordRowRejected("game_type")
		return parsedRow{}
	}

	id := get(colID)
	if id == "" {
		id = uuid.NewString()
	}

	return parsedRow{
		game: model.Game{
			ID:         id,
			Date:       parseDate(get(colDate)),
			Season:     season,
			HomeTeam:   home,
			AwayTeam:   away,
			PointsHome: ptsHome,
			PointsAway: ptsAway,
			Regular:    regular,
		},
		ok: true,
	}
}

// columnIndex maps required column names to field positions.
func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{colDate, colSeason, colHomeTeam, colAwayTeam, colHomePts, colAwayPts, colIsRegular} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrBadHeader, name)
		}
	}
	return cols, nil
}

// parseFlag accepts the source's 1/0 encoding plus plain booleans.
func parseFlag(s string) (bool, error) {
	switch s {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	return strconv.ParseBool(s)
}

// parseDate returns the zero time for dates matching no known layout.
// The original record keeps those rows; only the date is unknown.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
