package store

import (
	"context"
	"errors"
	"time"

	"github.com/lakeview-games/fishbot/internal/economy"
	"github.com/lakeview-games/fishbot/internal/fish"
)

// ErrNotFound is returned when an action expects an existing player row.
var ErrNotFound = errors.New("player not found")

type Metric string

const (
	MetricBalance Metric = "balance" // sum of catch rewards
	MetricWeight  Metric = "weight"  // sum of non-trash catch weights
	MetricTrash   Metric = "trash"   // count of trash catches
)

type LeaderboardRow struct {
	FirstName string
	LastName  string
	Username  string
	Score     float64
}

type Store interface {
	// GetPlayer loads one player row or ErrNotFound.
	GetPlayer(ctx context.Context, telegramID int64) (*economy.Player, error)

	// Commit upserts the player and, when c is non-nil, appends the catch
	// record in the same transaction.
	Commit(ctx context.Context, p *economy.Player, c *fish.Catch) error

	// Leaderboard aggregates catch records at or after since (zero time =
	// no window), ordered by score descending, capped at 10 rows.
	Leaderboard(ctx context.Context, metric Metric, since time.Time) ([]LeaderboardRow, error)

	// CountPlayers returns the global registered player count.
	CountPlayers(ctx context.Context) (int, error)

	Close() error
}
