package fish

import "fmt"

// BonusTrash is the one trash entry that stays in the draw pool even when
// rare bait filters junk out of the table.
const BonusTrash = "chest"

type Entry struct {
	ID         string
	Emoji      string
	Multiplier float64
	DropWeight float64 // relative draw weight (higher = more common)
	Color      string
	IsTrash    bool
	MinWeight  float64 // in kg
	MaxWeight  float64
}

type Table struct {
	entries    []Entry
	byID       map[string]int
	meanWeight float64
}

// NewTable validates the catalog and freezes it. Entries are immutable
// after this point and the table may be shared across goroutines.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("reward table is empty")
	}

	byID := make(map[string]int, len(entries))
	total := 0.0
	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("missing id at index %d", i)
		}
		if _, ok := byID[e.ID]; ok {
			return nil, fmt.Errorf("duplicate id %q", e.ID)
		}
		if e.DropWeight < 0 {
			return nil, fmt.Errorf("negative drop weight for %q", e.ID)
		}
		if e.MaxWeight < e.MinWeight {
			return nil, fmt.Errorf("inverted weight range for %q", e.ID)
		}
		byID[e.ID] = i
		total += e.DropWeight
	}

	own := make([]Entry, len(entries))
	copy(own, entries)

	return &Table{
		entries:    own,
		byID:       byID,
		meanWeight: total / float64(len(own)),
	}, nil
}

func (t *Table) Get(id string) (Entry, bool) {
	i, ok := t.byID[id]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

func (t *Table) All() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *Table) Count() int { return len(t.entries) }

// Default returns the production catalog. Drop weights are relative, not
// probabilities; trash entries carry a zero weight range.
func Default() *Table {
	t, err := NewTable([]Entry{
		{ID: "weed", Emoji: "🌿", Multiplier: 0.0, DropWeight: 20, Color: "#64748b", IsTrash: true, MinWeight: 0, MaxWeight: 0},
		{ID: "boot", Emoji: "👢", Multiplier: 0.0, DropWeight: 10, Color: "#64748b", IsTrash: true, MinWeight: 0, MaxWeight: 0},
		{ID: "tin", Emoji: "🥫", Multiplier: 0.0, DropWeight: 10, Color: "#64748b", IsTrash: true, MinWeight: 0, MaxWeight: 0},
		{ID: "bone", Emoji: "☠️", Multiplier: 0.0, DropWeight: 8, Color: "#64748b", IsTrash: true, MinWeight: 0, MaxWeight: 0},
		{ID: "bag", Emoji: "🛍️", Multiplier: 0.0, DropWeight: 8, Color: "#64748b", IsTrash: true, MinWeight: 0, MaxWeight: 0},
		{ID: "tire", Emoji: "🍩", Multiplier: 0.0, DropWeight: 5, Color: "#64748b", IsTrash: true, MinWeight: 0, MaxWeight: 0},
		{ID: "minnow", Emoji: "🐟", Multiplier: 1.0, DropWeight: 45, Color: "#fff", IsTrash: false, MinWeight: 0.05, MaxWeight: 0.15},
		{ID: "shrimp", Emoji: "🦐", Multiplier: 1.2, DropWeight: 40, Color: "#e2e8f0", IsTrash: false, MinWeight: 0.01, MaxWeight: 0.05},
		{ID: "sardine", Emoji: "🐟", Multiplier: 1.5, DropWeight: 30, Color: "#cbd5e1", IsTrash: false, MinWeight: 0.1, MaxWeight: 0.3},
		{ID: "carp", Emoji: "🎏", Multiplier: 1.8, DropWeight: 25, Color: "#fbbf24", IsTrash: false, MinWeight: 0.5, MaxWeight: 2.5},
		{ID: "perch", Emoji: "🐠", Multiplier: 2.0, DropWeight: 25, Color: "#a5f3fc", IsTrash: false, MinWeight: 0.3, MaxWeight: 1.2},
		{ID: "trout", Emoji: "🐟", Multiplier: 2.5, DropWeight: 20, Color: "#86efac", IsTrash: false, MinWeight: 1.0, MaxWeight: 4.0},
		{ID: "clown", Emoji: "🤡", Multiplier: 3.0, DropWeight: 18, Color: "#f97316", IsTrash: false, MinWeight: 0.1, MaxWeight: 0.3},
		{ID: "crab", Emoji: "🦀", Multiplier: 3.5, DropWeight: 15, Color: "#f87171", IsTrash: false, MinWeight: 1.0, MaxWeight: 5.0},
		{ID: "jelly", Emoji: "🪼", Multiplier: 4.0, DropWeight: 12, Color: "#c084fc", IsTrash: false, MinWeight: 0.5, MaxWeight: 2.0},
		{ID: "squid", Emoji: "🦑", Multiplier: 5.0, DropWeight: 10, Color: "#f472b6", IsTrash: false, MinWeight: 0.5, MaxWeight: 3.0},
		{ID: "seahorse", Emoji: "🐉", Multiplier: 6.0, DropWeight: 10, Color: "#fde047", IsTrash: false, MinWeight: 0.01, MaxWeight: 0.05},
		{ID: "pike", Emoji: "🐊", Multiplier: 7.0, DropWeight: 8, Color: "#4ade80", IsTrash: false, MinWeight: 2.0, MaxWeight: 12.0},
		{ID: "eel", Emoji: "🐍", Multiplier: 8.0, DropWeight: 7, Color: "#facc15", IsTrash: false, MinWeight: 1.0, MaxWeight: 5.0},
		{ID: "tuna", Emoji: "🐟", Multiplier: 12.0, DropWeight: 6, Color: "#60a5fa", IsTrash: false, MinWeight: 20.0, MaxWeight: 250.0},
		{ID: "sword", Emoji: "🗡️", Multiplier: 15.0, DropWeight: 5, Color: "#93c5fd", IsTrash: false, MinWeight: 30.0, MaxWeight: 300.0},
		{ID: "ray", Emoji: "👿", Multiplier: 20.0, DropWeight: 4, Color: "#818cf8", IsTrash: false, MinWeight: 5.0, MaxWeight: 50.0},
		{ID: "catfish", Emoji: "🐡", Multiplier: 25.0, DropWeight: 4, Color: "#d946ef", IsTrash: false, MinWeight: 10.0, MaxWeight: 100.0},
		{ID: "angler", Emoji: "👾", Multiplier: 35.0, DropWeight: 3, Color: "#a855f7", IsTrash: false, MinWeight: 2.0, MaxWeight: 10.0},
		{ID: "turtle", Emoji: "🐢", Multiplier: 40.0, DropWeight: 3, Color: "#22c55e", IsTrash: false, MinWeight: 30.0, MaxWeight: 150.0},
		{ID: "shark", Emoji: "🦈", Multiplier: 60.0, DropWeight: 2.5, Color: "#eab308", IsTrash: false, MinWeight: 300.0, MaxWeight: 1500.0},
		{ID: "whale", Emoji: "🐳", Multiplier: 120.0, DropWeight: 1.5, Color: "#3b82f6", IsTrash: false, MinWeight: 2000.0, MaxWeight: 10000.0},
		{ID: "chest", Emoji: "👑", Multiplier: 250.0, DropWeight: 0.5, Color: "#facc15", IsTrash: true, MinWeight: 0, MaxWeight: 0},
		{ID: "mega", Emoji: "🦖", Multiplier: 500.0, DropWeight: 0.2, Color: "#ef4444", IsTrash: false, MinWeight: 5000.0, MaxWeight: 20000.0},
		{ID: "kraken", Emoji: "🐙", Multiplier: 1000.0, DropWeight: 0.1, Color: "#dc2626", IsTrash: false, MinWeight: 10000.0, MaxWeight: 50000.0},
	})
	if err != nil {
		panic(err)
	}
	return t
}
