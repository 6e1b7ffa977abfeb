package economy

import (
	"math"
	mrand "math/rand"
	"time"

	"github.com/lakeview-games/fishbot/internal/fish"
)

type Status string

const (
	StatusCooldown Status = "cooldown"
	StatusNoEnergy Status = "no_energy"
	StatusMiss     Status = "miss"
	StatusCaught   Status = "caught"
)

// Outcome is the result of one fishing attempt. Entry, Weight and Reward
// are only meaningful when Status is StatusCaught.
type Outcome struct {
	Status    Status
	AFKEarned int64
	Entry     fish.Entry
	Weight    float64
	Reward    int64
}

// Trash entries that bypass the flat-trash formula entirely. The boot
// always pays nothing no matter the rod.
var trashRewardOverrides = map[string]int64{
	"boot": 0,
}

// Resolver runs the fishing attempt state machine against injected
// tables. It mutates the player in memory; persisting the result is the
// caller's transaction boundary.
type Resolver struct {
	tables *Tables
	picker *fish.Picker
}

func NewResolver(tables *Tables, table *fish.Table, rng *mrand.Rand) *Resolver {
	return &Resolver{
		tables: tables,
		picker: fish.NewPicker(table, rng),
	}
}

// AttemptCatch resolves one cast. Accrual always runs first, so even a
// cooldown rejection carries the afk earnings in its outcome; the
// cooldown check uses the pre-update click timestamp and leaves it
// untouched on rejection.
func (r *Resolver) AttemptCatch(p *Player, now time.Time) Outcome {
	afk := r.tables.Accrue(p, now.Unix(), true)

	nowSec := float64(now.UnixNano()) / 1e9
	if nowSec-p.LastClickAt < CastCooldownSec {
		return Outcome{Status: StatusCooldown, AFKEarned: afk}
	}
	p.LastClickAt = nowSec

	if p.Energy < CastEnergyCost {
		return Outcome{Status: StatusNoEnergy, AFKEarned: afk}
	}

	// one consumable per attempt, rare takes priority
	luckBoost := 0.0
	rareBait := false
	if p.BaitRare > 0 {
		p.BaitRare--
		luckBoost = RareBaitBoost
		rareBait = true
	} else if p.BaitCommon > 0 {
		p.BaitCommon--
		luckBoost = CommonBaitBoost
	}

	chance := math.Min(BaseCatchChance+float64(p.RodLevel)*CatchChancePerRodLevel+luckBoost, MaxCatchChance)

	p.Energy = math.Max(0, p.Energy-CastEnergyCost)

	if r.picker.Chance() > chance {
		// energy and bait are already spent
		return Outcome{Status: StatusMiss, AFKEarned: afk}
	}

	var entry fish.Entry
	if rareBait {
		entry = r.picker.PickFiltered()
	} else {
		entry = r.picker.Pick()
	}

	weight := r.picker.RollWeight(entry)
	reward := rewardFor(p.RodLevel, entry)
	p.Balance += reward

	return Outcome{
		Status:    StatusCaught,
		AFKEarned: afk,
		Entry:     entry,
		Weight:    weight,
		Reward:    reward,
	}
}

func rewardFor(rodLevel int, e fish.Entry) int64 {
	rodMult := math.Pow(float64(rodLevel), RodPowerExponent)

	if e.IsTrash {
		if override, ok := trashRewardOverrides[e.ID]; ok {
			return override
		}
		if e.Multiplier == 0 {
			return int64(math.Floor(FlatTrashReward * rodMult))
		}
		// bonus trash (the chest) keeps the general formula
	}

	return int64(math.Floor(BasePowerPerLevel * rodMult * e.Multiplier))
}
