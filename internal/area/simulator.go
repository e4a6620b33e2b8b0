package area

import "math/rand"

// Simulator applies the cosmetic occupancy random walk shown on the
// dashboard. It is not a sensor feed: each tick perturbs a fraction of the
// areas and rederives their status. The randomness source is injected so the
// walk is deterministic under test.
type Simulator struct {
	rng    *rand.Rand
	chance float64
}

const (
	defaultUpdateChance = 0.10

	// delta is uniform over [-2, 3]
	deltaMin  = -2
	deltaSpan = 6
)

func NewSimulator(rng *rand.Rand) *Simulator {
	return &Simulator{rng: rng, chance: defaultUpdateChance}
}

// Tick perturbs each area independently and returns the areas that changed.
// CurrentUsers stays clamped to [0, Capacity] no matter the walk.
func (s *Simulator) Tick(areas []*GymArea) []*GymArea {
	var changed []*GymArea

	for _, a := range areas {
		if s.rng.Float64() >= s.chance {
			continue
		}

		delta := s.rng.Intn(deltaSpan) + deltaMin
		next := clamp(a.CurrentUsers+delta, 0, a.Capacity)

		a.CurrentUsers = next
		a.Status = NextStatus(a.Status, a.CurrentUsers, a.Capacity)
		changed = append(changed, a)
	}

	return changed
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
