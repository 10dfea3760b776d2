package stats_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/hoopboard/hoopboard/internal/domain/model"
	"github.com/hoopboard/hoopboard/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// threeGames is the small reference dataset used across the suite:
// two 2020 regular-season meetings and one 2021 playoff game between
// the Aces and the Bears.
func threeGames() *model.Dataset {
	return model.NewDataset([]model.Game{
		{ID: "g1", Date: day(2020, time.November, 1), Season: 2020, HomeTeam: "Aces", AwayTeam: "Bears", PointsHome: 100, PointsAway: 90, Regular: true},
		{ID: "g2", Date: day(2021, time.January, 15), Season: 2020, HomeTeam: "Bears", AwayTeam: "Aces", PointsHome: 95, PointsAway: 99, Regular: true},
		{ID: "g3", Date: day(2022, time.May, 3), Season: 2021, HomeTeam: "Aces", AwayTeam: "Bears", PointsHome: 110, PointsAway: 108, Regular: false},
	})
}

func TestOverview(t *testing.T) {
	Convey("Given the three-game dataset", t, func() {
		engine := stats.New(threeGames())

		Convey("When computing the overview", func() {
			overview, err := engine.Overview()

			Convey("Then totals and averages match the records", func() {
				So(err, ShouldBeNil)
				So(overview.TotalGames, ShouldEqual, 3)
				So(overview.AvgHomePoints, ShouldAlmostEqual, (100.0+95+110)/3)
				So(overview.AvgAwayPoints, ShouldAlmostEqual, (90.0+99+108)/3)
			})

			Convey("And the home win rate counts g1 and g3 only", func() {
				So(overview.HomeWinRate, ShouldAlmostEqual, 2.0/3*100)
				So(overview.HomeWinRate, ShouldBeBetweenOrEqual, 0, 100)
			})
		})
	})

	Convey("Given an empty dataset", t, func() {
		engine := stats.New(model.NewDataset(nil))

		Convey("When computing the overview", func() {
			_, err := engine.Overview()

			Convey("Then it reports the empty-dataset error", func() {
				So(err, ShouldWrap, stats.ErrEmptyDataset)
			})
		})
	})
}

func TestSeasonTrend(t *testing.T) {
	Convey("Given the three-game dataset", t, func() {
		engine := stats.New(threeGames())

		Convey("When computing the season trend", func() {
			rows := engine.SeasonTrend()

			Convey("Then there is one row per season, ascending", func() {
				So(len(rows), ShouldEqual, 2)
				So(rows[0].Season, ShouldEqual, 2020)
				So(rows[1].Season, ShouldEqual, 2021)
			})

			Convey("And the per-season averages are correct", func() {
				So(rows[0].Games, ShouldEqual, 2)
				So(rows[0].AvgTotal, ShouldAlmostEqual, (190.0+194)/2)
				So(rows[0].AvgHome, ShouldAlmostEqual, (100.0+95)/2)
				So(rows[0].AvgAway, ShouldAlmostEqual, (90.0+99)/2)
				So(rows[1].Games, ShouldEqual, 1)
				So(rows[1].AvgTotal, ShouldAlmostEqual, 218.0)
			})

			Convey("And no season row has zero games", func() {
				for _, row := range rows {
					So(row.Games, ShouldBeGreaterThan, 0)
				}
			})
		})
	})

	Convey("Given an empty dataset", t, func() {
		engine := stats.New(model.NewDataset(nil))

		Convey("Then the trend is empty, not an error", func() {
			So(engine.SeasonTrend(), ShouldBeEmpty)
		})
	})
}

func TestTeamRankings(t *testing.T) {
	Convey("Given the three-game dataset", t, func() {
		engine := stats.New(threeGames())

		Convey("When ranking without a season filter", func() {
			rows := engine.TeamRankings(nil)

			Convey("Then the Aces won all three meetings", func() {
				So(len(rows), ShouldEqual, 1)
				So(rows[0].Team, ShouldEqual, "Aces")
				So(rows[0].Wins, ShouldEqual, 3)
				So(rows[0].Games, ShouldEqual, 3)
				So(rows[0].WinRate, ShouldAlmostEqual, 100.0)
			})
		})

		Convey("When filtering to 2020", func() {
			season := 2020
			rows := engine.TeamRankings(&season)

			Convey("Then only the 2020 meetings count", func() {
				So(len(rows), ShouldEqual, 1)
				So(rows[0].Team, ShouldEqual, "Aces")
				So(rows[0].Wins, ShouldEqual, 2)
				So(rows[0].Games, ShouldEqual, 2)
			})
		})

		Convey("When filtering to a season outside the dataset", func() {
			season := 1995

			Convey("Then the ranking is empty, not an error", func() {
				So(engine.TeamRankings(&season), ShouldBeEmpty)
			})
		})
	})

	Convey("Given twenty teams with distinct win counts", t, func() {
		games := make([]model.Game, 0, 20)
		for i := 0; i < 20; i++ {
			winner := fmt.Sprintf("team-%02d", i)
			for w := 0; w <= i; w++ {
				games = append(games, model.Game{
					ID: fmt.Sprintf("g-%02d-%d", i, w), Season: 2010,
					HomeTeam: winner, AwayTeam: "punching-bag",
					PointsHome: 100, PointsAway: 80, Regular: true,
				})
			}
		}
		engine := stats.New(model.NewDataset(games))

		Convey("When ranking", func() {
			rows := engine.TeamRankings(nil)

			Convey("Then at most 15 rows come back, wins descending", func() {
				So(len(rows), ShouldEqual, 15)
				for i := 1; i < len(rows); i++ {
					So(rows[i-1].Wins, ShouldBeGreaterThanOrEqualTo, rows[i].Wins)
				}
				So(rows[0].Team, ShouldEqual, "team-19")
			})

			Convey("And games is always at least wins", func() {
				for _, row := range rows {
					So(row.Games, ShouldBeGreaterThanOrEqualTo, row.Wins)
				}
			})
		})
	})

	Convey("Given teams tied on wins", t, func() {
		games := []model.Game{
			{ID: "t1", Season: 2015, HomeTeam: "Zephyrs", AwayTeam: "Mules", PointsHome: 90, PointsAway: 80, Regular: true},
			{ID: "t2", Season: 2015, HomeTeam: "Aces", AwayTeam: "Mules", PointsHome: 90, PointsAway: 80, Regular: true},
		}
		engine := stats.New(model.NewDataset(games))

		Convey("Then the tie breaks by team id ascending", func() {
			rows := engine.TeamRankings(nil)
			So(len(rows), ShouldEqual, 2)
			So(rows[0].Team, ShouldEqual, "Aces")
			So(rows[1].Team, ShouldEqual, "Zephyrs")
		})
	})

	Convey("Given a tied game", t, func() {
		games := []model.Game{
			{ID: "d1", Season: 2015, HomeTeam: "Aces", AwayTeam: "Bears", PointsHome: 100, PointsAway: 100, Regular: true},
			{ID: "d2", Season: 2015, HomeTeam: "Aces", AwayTeam: "Bears", PointsHome: 100, PointsAway: 90, Regular: true},
		}
		engine := stats.New(model.NewDataset(games))

		Convey("Then the tie counts as a game for both but a win for neither", func() {
			rows := engine.TeamRankings(nil)
			So(len(rows), ShouldEqual, 1)
			So(rows[0].Team, ShouldEqual, "Aces")
			So(rows[0].Wins, ShouldEqual, 1)
			So(rows[0].Games, ShouldEqual, 2)
			So(rows[0].WinRate, ShouldAlmostEqual, 50.0)
		})
	})
}

func TestHighScoring(t *testing.T) {
	Convey("Given the three-game dataset", t, func() {
		engine := stats.New(threeGames())

		Convey("When listing high-scoring games", func() {
			rows := engine.HighScoring()

			Convey("Then all three come back ordered by total descending", func() {
				So(len(rows), ShouldEqual, 3)
				So(rows[0].TotalPoints, ShouldEqual, 218)
				So(rows[1].TotalPoints, ShouldEqual, 194)
				So(rows[2].TotalPoints, ShouldEqual, 190)
			})

			Convey("And every total equals the sum of its score fields", func() {
				for _, row := range rows {
					So(row.TotalPoints, ShouldEqual, row.PointsHome+row.PointsAway)
				}
			})
		})
	})

	Convey("Given more games than the listing size", t, func() {
		games := make([]model.Game, 0, 30)
		for i := 0; i < 30; i++ {
			games = append(games, model.Game{
				ID: fmt.Sprintf("hs-%02d", i), Season: 2012,
				Date:     day(2012, time.December, 1+i%28),
				HomeTeam: "Aces", AwayTeam: "Bears",
				PointsHome: 80 + i, PointsAway: 80, Regular: true,
			})
		}
		engine := stats.New(model.NewDataset(games))

		Convey("Then exactly ten rows come back, non-increasing", func() {
			rows := engine.HighScoring()
			So(len(rows), ShouldEqual, 10)
			for i := 1; i < len(rows); i++ {
				So(rows[i-1].TotalPoints, ShouldBeGreaterThanOrEqualTo, rows[i].TotalPoints)
			}
		})
	})

	Convey("Given tied totals with mixed dates", t, func() {
		games := []model.Game{
			{ID: "late", Date: day(2019, time.March, 9), Season: 2018, HomeTeam: "A", AwayTeam: "B", PointsHome: 100, PointsAway: 100, Regular: true},
			{ID: "nodate", Season: 2018, HomeTeam: "C", AwayTeam: "D", PointsHome: 100, PointsAway: 100, Regular: true},
			{ID: "early", Date: day(2018, time.November, 2), Season: 2018, HomeTeam: "E", AwayTeam: "F", PointsHome: 110, PointsAway: 90, Regular: true},
		}
		engine := stats.New(model.NewDataset(games))

		Convey("Then ties order earliest-date first with unknown dates last", func() {
			rows := engine.HighScoring()
			So(len(rows), ShouldEqual, 3)
			So(rows[0].HomeTeam, ShouldEqual, "E")
			So(rows[1].HomeTeam, ShouldEqual, "A")
			So(rows[2].HomeTeam, ShouldEqual, "C")
		})
	})
}

func TestTeamDetail(t *testing.T) {
	Convey("Given the three-game dataset", t, func() {
		engine := stats.New(threeGames())

		Convey("When querying the Aces", func() {
			detail := engine.TeamDetail("Aces")

			Convey("Then the aggregate record combines home and away games", func() {
				So(detail.Wins, ShouldEqual, 3)
				So(detail.Games, ShouldEqual, 3)
				So(detail.WinRate, ShouldAlmostEqual, 100.0)
			})

			Convey("And average points weights home and away by game count", func() {
				// 100 and 110 at home, 99 away.
				So(detail.AvgPoints, ShouldAlmostEqual, (100.0+110+99)/3)
			})

			Convey("And the season breakdown omits nothing they played", func() {
				So(len(detail.Seasons), ShouldEqual, 2)
				So(detail.Seasons[0].Season, ShouldEqual, 2020)
				So(detail.Seasons[1].Season, ShouldEqual, 2021)
				for _, row := range detail.Seasons {
					So(row.Games, ShouldBeGreaterThan, 0)
					So(row.WinRate, ShouldAlmostEqual, float64(row.Wins)/float64(row.Games)*100)
				}
			})
		})

		Convey("When querying the Bears", func() {
			detail := engine.TeamDetail("Bears")

			Convey("Then they played every game and won none", func() {
				So(detail.Wins, ShouldEqual, 0)
				So(detail.Games, ShouldEqual, 3)
				So(detail.WinRate, ShouldAlmostEqual, 0.0)
				So(detail.AvgPoints, ShouldAlmostEqual, (90.0+95+108)/3)
			})
		})

		Convey("When querying a team that never played", func() {
			detail := engine.TeamDetail("Ghosts")

			Convey("Then the zero record comes back without error", func() {
				So(detail.Team, ShouldEqual, "Ghosts")
				So(detail.Wins, ShouldEqual, 0)
				So(detail.Games, ShouldEqual, 0)
				So(detail.WinRate, ShouldAlmostEqual, 0.0)
				So(detail.AvgPoints, ShouldAlmostEqual, 0.0)
				So(detail.Seasons, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a team active in twelve seasons", t, func() {
		games := make([]model.Game, 0, 12)
		for s := 2010; s < 2022; s++ {
			games = append(games, model.Game{
				ID: fmt.Sprintf("s-%d", s), Season: s,
				HomeTeam: "Aces", AwayTeam: "Bears",
				PointsHome: 100, PointsAway: 90, Regular: true,
			})
		}
		engine := stats.New(model.NewDataset(games))

		Convey("Then only the ten most recent seasons appear, ascending", func() {
			detail := engine.TeamDetail("Aces")
			So(len(detail.Seasons), ShouldEqual, 10)
			So(detail.Seasons[0].Season, ShouldEqual, 2012)
			So(detail.Seasons[9].Season, ShouldEqual, 2021)
		})
	})
}

func TestPlayoffsVsRegular(t *testing.T) {
	Convey("Given the three-game dataset", t, func() {
		engine := stats.New(threeGames())

		Convey("When comparing partitions", func() {
			cmp := engine.PlayoffsVsRegular()

			Convey("Then the partitions cover the whole dataset", func() {
				overview, err := engine.Overview()
				So(err, ShouldBeNil)
				So(cmp.Regular.Games+cmp.Playoffs.Games, ShouldEqual, overview.TotalGames)
			})

			Convey("And each side is summarized independently", func() {
				So(cmp.Regular.Games, ShouldEqual, 2)
				So(cmp.Regular.AvgTotal, ShouldAlmostEqual, (190.0+194)/2)
				So(cmp.Regular.HomeWinRate, ShouldAlmostEqual, 50.0)
				So(cmp.Playoffs.Games, ShouldEqual, 1)
				So(cmp.Playoffs.AvgTotal, ShouldAlmostEqual, 218.0)
				So(cmp.Playoffs.HomeWinRate, ShouldAlmostEqual, 100.0)
			})
		})
	})

	Convey("Given a dataset with no playoff games", t, func() {
		games := []model.Game{
			{ID: "r1", Season: 2019, HomeTeam: "Aces", AwayTeam: "Bears", PointsHome: 101, PointsAway: 99, Regular: true},
		}
		engine := stats.New(model.NewDataset(games))

		Convey("Then the playoffs side reports zeros instead of failing", func() {
			cmp := engine.PlayoffsVsRegular()
			So(cmp.Playoffs.Games, ShouldEqual, 0)
			So(cmp.Playoffs.AvgTotal, ShouldAlmostEqual, 0.0)
			So(cmp.Playoffs.HomeWinRate, ShouldAlmostEqual, 0.0)
			So(cmp.Regular.Games, ShouldEqual, 1)
		})
	})
}

func TestEngineOptions(t *testing.T) {
	Convey("Given an engine with smaller listing sizes", t, func() {
		games := make([]model.Game, 0, 8)
		for i := 0; i < 8; i++ {
			// The first four hosts win their game; the Aces win the rest.
			home := 90
			if i < 4 {
				home = 110
			}
			games = append(games, model.Game{
				ID: fmt.Sprintf("o-%d", i), Season: 2010 + i,
				HomeTeam: fmt.Sprintf("home-%d", i), AwayTeam: "Aces",
				PointsHome: home, PointsAway: 100, Regular: true,
			})
		}
		engine := stats.New(model.NewDataset(games),
			stats.WithRankingSize(1),
			stats.WithHighScoringSize(3),
			stats.WithSeasonWindow(5),
		)

		Convey("Then the caps apply to each listing", func() {
			So(len(engine.TeamRankings(nil)), ShouldEqual, 1)
			So(len(engine.HighScoring()), ShouldEqual, 3)
			So(len(engine.TeamDetail("Aces").Seasons), ShouldEqual, 5)
		})
	})
}
