package economy

import "math"

// Accrue credits passive boat income and energy regeneration for the time
// since the player's last activity, then advances LastActiveAt to now.
// Income is capped by the boat's capacity window; regeneration is not,
// but an active call inside the grace window earns no regen so that
// rapid clicks in one session cannot farm energy. Returns the passive
// income earned, for display as "earned while away".
func (t *Tables) Accrue(p *Player, now int64, isActiveCall bool) int64 {
	elapsed := now - p.LastActiveAt
	if elapsed < 0 {
		elapsed = 0
	}

	capWindow := t.BoatCapHrs[p.BoatLevel] * 3600
	effective := math.Min(float64(elapsed), capWindow)
	earned := int64(math.Floor(effective * t.BoatIncome[p.BoatLevel]))
	p.Balance += earned

	if !isActiveCall || elapsed > ActiveRegenGraceSec {
		p.Energy = math.Min(MaxEnergy, p.Energy+float64(elapsed)*EnergyRegenPerSec)
	}

	p.LastActiveAt = now
	return earned
}
