package fish

import "time"

// Catch is the canonical append-only record used by the engine and stores.
// IsTrash is copied from the table entry at resolution time and is not
// re-derived afterwards.
type Catch struct {
	ID       int64
	UserID   int64
	FishID   string
	Weight   float64
	IsTrash  bool
	Reward   int64
	CaughtAt time.Time
}
