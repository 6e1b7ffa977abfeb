package economy

// Tunable engine constants. Energy is a float internally and truncated to
// an int only for display.
const (
	MaxEnergy         = 100.0
	EnergyRegenPerSec = 0.5
	CastEnergyCost    = 1.0
	CastCooldownSec   = 0.5

	// a burst of calls inside this window counts as one interactive
	// session and earns no regen
	ActiveRegenGraceSec = 5

	BaseCatchChance        = 0.15
	CatchChancePerRodLevel = 0.03
	MaxCatchChance         = 0.60

	CommonBaitBoost = 0.15
	RareBaitBoost   = 0.35

	RodPowerExponent  = 1.15
	BasePowerPerLevel = 10.0
	FlatTrashReward   = 2.0

	BaseAdReward        = 1000
	AdRewardPerRodLevel = 100

	StartingBalance    = 200
	StartingBaitCommon = 5
)

type BaitKind int

const (
	BaitNone BaitKind = iota
	BaitCommon
	BaitRare
)

type Consumable struct {
	Price  int64
	Bait   BaitKind // which counter a purchase tops up, if any
	Pack   int
	Energy float64 // energy restored, clamped to MaxEnergy
}

// Tables holds the progression ladders. Price maps are sparse at the top:
// a missing tier means no further upgrade is available. Instances are
// read-only after construction and safe to share.
type Tables struct {
	RodPrices   map[int]int64
	BoatPrices  map[int]int64
	BoatIncome  map[int]float64 // currency per second
	BoatCapHrs  map[int]float64 // passive income window, hours
	Consumables map[string]Consumable
}

func DefaultTables() *Tables {
	return &Tables{
		RodPrices: map[int]int64{
			1: 0, 2: 500, 3: 1500, 4: 5000, 5: 15000,
			6: 50000, 7: 150000, 8: 500000, 9: 1000000, 10: 5000000,
		},
		BoatPrices: map[int]int64{
			1: 2000, 2: 10000, 3: 50000, 4: 200000, 5: 1000000,
		},
		BoatIncome: map[int]float64{
			0: 0, 1: 2, 2: 10, 3: 50, 4: 200, 5: 1000,
		},
		BoatCapHrs: map[int]float64{
			0: 0, 1: 2, 2: 4, 3: 8, 4: 12, 5: 24,
		},
		Consumables: map[string]Consumable{
			"energy_drink": {Price: 500, Energy: 50},
			"bait_common":  {Price: 300, Bait: BaitCommon, Pack: 5},
			"bait_rare":    {Price: 1500, Bait: BaitRare, Pack: 3},
		},
	}
}

// NextRodPrice returns the price of the tier above the given rod level.
func (t *Tables) NextRodPrice(level int) (int64, bool) {
	p, ok := t.RodPrices[level+1]
	return p, ok
}

func (t *Tables) NextBoatPrice(level int) (int64, bool) {
	p, ok := t.BoatPrices[level+1]
	return p, ok
}

// AdReward scales the ad-watch payout with rod progression.
func (t *Tables) AdReward(rodLevel int) int64 {
	return BaseAdReward + int64(rodLevel)*AdRewardPerRodLevel
}
