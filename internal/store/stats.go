package store

import (
	"context"
	"database/sql"
	"math"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/cyberquest/cyberquest/internal/apperr"
)

// levelOrder sorts level names easiest first; unknown levels go last.
var levelOrder = map[string]int{"beginner": 0, "intermediate": 1, "advanced": 2}

// Leaderboard returns up to limit scores ordered by raw score, newest
// first among equal scores.
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, apperr.Validation("limit", "must be positive, got %d", limit)
	}
	sc := entsql.Table(tableScores).As("s")
	p := entsql.Table(tablePlayers).As("p")
	sel := sqlite().
		Select(p.C("username"), sc.C("level"), sc.C("score"), sc.C("max_score"),
			sc.C("percentage"), sc.C("risk_level"), sc.C("played_at")).
		From(sc).
		Join(p).On(sc.C("player_id"), p.C("id")).
		OrderBy(entsql.Desc(sc.C("score")), entsql.Desc(sc.C("played_at")), entsql.Desc(sc.C("id"))).
		Limit(limit)

	var out []LeaderboardEntry
	err := query(ctx, s.drv, sel, func(rows *entsql.Rows) error {
		var (
			e        LeaderboardEntry
			playedAt int64
		)
		if err := rows.Scan(&e.Username, &e.Level, &e.Score, &e.MaxScore, &e.Percentage, &e.RiskTier, &playedAt); err != nil {
			return err
		}
		e.PlayedAt = time.Unix(0, playedAt).UTC()
		out = append(out, e)
		return nil
	})
	if err != nil {
		return nil, apperr.Storage("leaderboard", err)
	}
	return out, nil
}

// PlayerStats returns the game count, best score and average percentage
// of a player, read in one transaction. Unknown players get zero values.
func (s *Store) PlayerStats(ctx context.Context, playerID int64) (PlayerStats, error) {
	var stats PlayerStats
	err := s.withTx(ctx, "player stats", func(tx dialect.Tx) error {
		agg := sqlite().
			Select(entsql.Count("*"), entsql.Avg("percentage")).
			From(entsql.Table(tableScores)).
			Where(entsql.EQ("player_id", playerID))
		var avg sql.NullFloat64
		if err := query(ctx, tx, agg, func(rows *entsql.Rows) error {
			return rows.Scan(&stats.TotalGames, &avg)
		}); err != nil {
			return err
		}
		if avg.Valid {
			stats.AveragePercentage = math.Round(avg.Float64*100) / 100
		}
		if stats.TotalGames == 0 {
			return nil
		}

		best := sqlite().
			Select("level", "score", "max_score", "percentage", "risk_level", "played_at").
			From(entsql.Table(tableScores)).
			Where(entsql.EQ("player_id", playerID)).
			OrderBy(entsql.Desc("score"), entsql.Desc("played_at")).
			Limit(1)
		return query(ctx, tx, best, func(rows *entsql.Rows) error {
			var (
				b        BestScore
				playedAt int64
			)
			if err := rows.Scan(&b.Level, &b.Score, &b.MaxScore, &b.Percentage, &b.RiskTier, &playedAt); err != nil {
				return err
			}
			b.PlayedAt = time.Unix(0, playedAt).UTC()
			stats.Best = &b
			return nil
		})
	})
	if err != nil {
		return PlayerStats{}, err
	}
	return stats, nil
}

// CategoryPerformance groups a player's attempt log by level.
func (s *Store) CategoryPerformance(ctx context.Context, playerID int64) ([]LevelPerformance, error) {
	sel := sqlite().
		Select("level",
			entsql.As(entsql.Count("*"), "total_attempts"),
			entsql.As("SUM(CASE WHEN correct THEN 1 ELSE 0 END)", "correct_attempts")).
		From(entsql.Table(tableAttempts)).
		Where(entsql.EQ("player_id", playerID)).
		GroupBy("level")

	var out []LevelPerformance
	err := query(ctx, s.drv, sel, func(rows *entsql.Rows) error {
		var lp LevelPerformance
		if err := rows.Scan(&lp.Level, &lp.TotalAttempts, &lp.CorrectAttempts); err != nil {
			return err
		}
		out = append(out, lp)
		return nil
	})
	if err != nil {
		return nil, apperr.Storage("category performance", err)
	}
	sortLevels(out)
	return out, nil
}

func sortLevels(lps []LevelPerformance) {
	rank := func(level string) int {
		if r, ok := levelOrder[level]; ok {
			return r
		}
		return len(levelOrder)
	}
	for i := 1; i < len(lps); i++ {
		for j := i; j > 0 && rank(lps[j].Level) < rank(lps[j-1].Level); j-- {
			lps[j], lps[j-1] = lps[j-1], lps[j]
		}
	}
}
