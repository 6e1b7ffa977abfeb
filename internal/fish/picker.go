package fish

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	mrand "math/rand"
	"sync"
	"time"
)

type Picker struct {
	table *Table

	// one picker serves every player, so rng access is synchronized
	mu  sync.Mutex
	rng *mrand.Rand

	// cumulative draw weights over the full table, and over the table with
	// trash zeroed out (bonus trash excepted) for rare-bait draws
	cumulative []float64
	filtered   []float64
	total      float64
	totalFilt  float64
}

func NewPicker(t *Table, rng *mrand.Rand) *Picker {
	if rng == nil {
		var b [8]byte
		if _, err := rand.Read(b[:]); err != nil {
			rng = mrand.New(mrand.NewSource(time.Now().UnixNano()))
		} else {
			rng = mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
		}
	}

	p := &Picker{
		table:      t,
		rng:        rng,
		cumulative: make([]float64, len(t.entries)),
		filtered:   make([]float64, len(t.entries)),
	}

	for i, e := range t.entries {
		p.total += e.DropWeight
		p.cumulative[i] = p.total

		w := e.DropWeight
		if e.IsTrash && e.ID != BonusTrash {
			w = 0
		}
		p.totalFilt += w
		p.filtered[i] = p.totalFilt
	}
	return p
}

// Pick draws over the entire table.
func (p *Picker) Pick() Entry {
	return p.draw(p.cumulative, p.total)
}

// PickFiltered draws with ordinary trash excluded; the bonus trash entry
// keeps its weight.
func (p *Picker) PickFiltered() Entry {
	return p.draw(p.filtered, p.totalFilt)
}

func (p *Picker) draw(cum []float64, total float64) Entry {
	if total <= 0 {
		// degenerate table: nothing has weight, fall back to the first entry
		return p.table.entries[0]
	}
	roll := p.roll() * total

	// binary search for the first cumulative weight above the roll
	lo, hi := 0, len(cum)-1
	for lo < hi {
		mid := (lo + hi) >> 1
		if roll < cum[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return p.table.entries[lo]
}

// RollWeight samples a catch weight uniformly within the entry's range,
// rounded to two decimals. Trash has no weight; a fixed range always
// yields its single value.
func (p *Picker) RollWeight(e Entry) float64 {
	if e.IsTrash || e.MaxWeight < e.MinWeight {
		return 0
	}
	w := e.MinWeight + (e.MaxWeight-e.MinWeight)*p.roll()
	return math.Round(w*100) / 100
}

// Chance returns a uniform roll in [0,1).
func (p *Picker) Chance() float64 {
	return p.roll()
}

func (p *Picker) roll() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64()
}
