// Command gendata writes a synthetic games CSV for local development,
// shaped like the historical source file the service loads.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Score distribution constants, loosely matching modern game totals.
const (
	basePoints   = 85
	pointsSpread = 45
	regularShare = 0.93
)

var teams = []string{
	"Atlanta Hawks", "Boston Celtics", "Chicago Bulls", "Cleveland Cavaliers",
	"Dallas Mavericks", "Denver Nuggets", "Golden State Warriors", "Houston Rockets",
	"Los Angeles Lakers", "Memphis Grizzlies", "Miami Heat", "Milwaukee Bucks",
	"New York Knicks", "Oklahoma City Thunder", "Philadelphia 76ers", "Phoenix Suns",
	"Portland Trail Blazers", "Sacramento Kings", "San Antonio Spurs", "Toronto Raptors",
}

func main() {
	out := flag.String("out", "games.csv", "output file path")
	startSeason := flag.Int("start", 2000, "first season-start year")
	seasonCount := flag.Int("seasons", 25, "number of seasons to generate")
	gamesPerSeason := flag.Int("games", 1230, "games per season")
	seed := flag.Int64("seed", time.Now().UnixNano(), "rng seed")
	flag.Parse()

	if err := run(*out, *startSeason, *seasonCount, *gamesPerSeason, *seed); err != nil {
		fmt.Fprintln(os.Stderr, "gendata:", err)
		os.Exit(1)
	}
}

func run(path string, startSeason, seasonCount, gamesPerSeason int, seed int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	rng := rand.New(rand.NewSource(seed))
	w := csv.NewWriter(f)

	header := []string{"game_id", "datetime", "seasonStartYear", "homeTeam", "awayTeam", "pointsHome", "pointsAway", "isRegular"}
	if err := w.Write(header); err != nil {
		return err
	}

	rows := 0
	for s := 0; s < seasonCount; s++ {
		season := startSeason + s
		seasonOpen := time.Date(season, time.October, 20, 19, 0, 0, 0, time.UTC)
		for g := 0; g < gamesPerSeason; g++ {
			home := teams[rng.Intn(len(teams))]
			away := teams[rng.Intn(len(teams))]
			for away == home {
				away = teams[rng.Intn(len(teams))]
			}
			date := seasonOpen.AddDate(0, 0, rng.Intn(230))
			regular := "1"
			if rng.Float64() > regularShare {
				regular = "0"
			}
			row := []string{
				uuid.NewString(),
				date.Format("2006-01-02 15:04:05"),
				strconv.Itoa(season),
				home,
				away,
				strconv.Itoa(basePoints + rng.Intn(pointsSpread)),
				strconv.Itoa(basePoints + rng.Intn(pointsSpread)),
				regular,
			}
			if err := w.Write(row); err != nil {
				return err
			}
			rows++
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	fmt.Printf("wrote %d games to %s\n", rows, path)
	return nil
}
