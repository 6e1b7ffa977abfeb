package economy

import "math"

// Purchase validates affordability and applies a single upgrade or
// consumable purchase. Unknown item ids and unaffordable or maxed-out
// purchases return false with the player untouched.
func (t *Tables) Purchase(p *Player, itemID string) bool {
	switch itemID {
	case "rod":
		price, ok := t.NextRodPrice(p.RodLevel)
		if !ok || p.Balance < price {
			return false
		}
		p.Balance -= price
		p.RodLevel++
		return true

	case "boat":
		price, ok := t.NextBoatPrice(p.BoatLevel)
		if !ok || p.Balance < price {
			return false
		}
		p.Balance -= price
		p.BoatLevel++
		return true
	}

	c, ok := t.Consumables[itemID]
	if !ok || p.Balance < c.Price {
		return false
	}
	p.Balance -= c.Price

	if c.Energy > 0 {
		p.Energy = math.Min(MaxEnergy, p.Energy+c.Energy)
	}
	switch c.Bait {
	case BaitCommon:
		p.BaitCommon += c.Pack
	case BaitRare:
		p.BaitRare += c.Pack
	}
	return true
}
