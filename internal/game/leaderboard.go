package game

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lakeview-games/fishbot/internal/metrics"
	"github.com/lakeview-games/fishbot/internal/store"
)

// fallbackDisplayName labels players who never supplied any name.
const fallbackDisplayName = "Fisher"

// Leaderboard aggregates the catch log over the requested window.
// Unrecognized metrics and periods fall back to balance / all-time, and
// storage failures degrade to an empty board rather than an error.
func (s *Service) Leaderboard(ctx context.Context, metric, period string) *LeaderboardResponse {
	metrics.LeaderboardQueriesTotal.Inc()

	m := store.MetricBalance
	switch metric {
	case "weight":
		m = store.MetricWeight
	case "trash":
		m = store.MetricTrash
	}

	var since time.Time
	now := s.clock.Now()
	switch period {
	case "week":
		since = now.AddDate(0, 0, -7)
	case "month":
		since = now.AddDate(0, 0, -30)
	case "year":
		since = now.AddDate(0, 0, -365)
	}

	rows, err := s.store.Leaderboard(ctx, m, since)
	if err != nil {
		s.log.Error("leaderboard aggregation failed", err, zap.String("metric", metric), zap.String("period", period))
		metrics.LeaderboardErrorsTotal.Inc()
		return &LeaderboardResponse{Leaderboard: []LeaderboardEntry{}}
	}

	total, err := s.store.CountPlayers(ctx)
	if err != nil {
		s.log.Error("player count failed", err)
		metrics.LeaderboardErrorsTotal.Inc()
		return &LeaderboardResponse{Leaderboard: []LeaderboardEntry{}}
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, LeaderboardEntry{
			Username: displayName(r),
			Value:    r.Score,
		})
	}

	return &LeaderboardResponse{Leaderboard: entries, Total: total}
}

// displayName resolves a row's label: first name (plus last name when
// present), then username, then the fallback.
func displayName(r store.LeaderboardRow) string {
	if r.FirstName != "" {
		if r.LastName != "" {
			return r.FirstName + " " + r.LastName
		}
		return r.FirstName
	}
	if r.Username != "" {
		return r.Username
	}
	return fallbackDisplayName
}
