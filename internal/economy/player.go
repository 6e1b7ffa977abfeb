package economy

// Player is the authoritative per-account economy state. Timestamps are
// plain fields set by the action engine, never defaulted by the struct.
type Player struct {
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string

	Balance    int64
	Energy     float64 // 0 <= Energy <= MaxEnergy
	RodLevel   int     // >= 1, bounded by the rod price ladder
	BoatLevel  int     // >= 0, 0 means no passive income
	BaitCommon int
	BaitRare   int

	LastActiveAt int64   // epoch seconds, monotonic
	LastClickAt  float64 // epoch seconds with sub-second precision, monotonic
}

// NewPlayer builds the starting state for a first-seen account.
func NewPlayer(telegramID int64, now int64) *Player {
	return &Player{
		TelegramID:   telegramID,
		Balance:      StartingBalance,
		Energy:       MaxEnergy,
		RodLevel:     1,
		BoatLevel:    0,
		BaitCommon:   StartingBaitCommon,
		LastActiveAt: now,
	}
}

// SetDisplayFields applies last-write-wins updates for non-empty values.
func (p *Player) SetDisplayFields(username, firstName, lastName string) {
	if username != "" {
		p.Username = username
	}
	if firstName != "" {
		p.FirstName = firstName
	}
	if lastName != "" {
		p.LastName = lastName
	}
}
