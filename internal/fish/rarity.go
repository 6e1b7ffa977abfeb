package fish

type RarityTier int

const (
	TierCommon RarityTier = iota
	TierUncommon
	TierRare
	TierEpic
	TierLegendary
	TierMythic
)

func (t RarityTier) String() string {
	switch t {
	case TierMythic:
		return "Mythic"
	case TierLegendary:
		return "Legendary"
	case TierEpic:
		return "Epic"
	case TierRare:
		return "Rare"
	case TierUncommon:
		return "Uncommon"
	default:
		return "Common"
	}
}

// Tier classifies an entry by its drop weight relative to the table mean.
// Purely a display grouping; it never feeds back into draw odds.
func (t *Table) Tier(id string) RarityTier {
	e, ok := t.Get(id)
	if !ok || t.meanWeight <= 0 {
		return TierCommon
	}
	r := e.DropWeight / t.meanWeight
	switch {
	case r < 0.05:
		return TierMythic
	case r < 0.20:
		return TierLegendary
	case r < 0.50:
		return TierEpic
	case r < 1.00:
		return TierRare
	case r < 1.50:
		return TierUncommon
	default:
		return TierCommon
	}
}
