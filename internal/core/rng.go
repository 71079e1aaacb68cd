package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntRange returns a uniform integer in [min, max], both bounds inclusive.
// When max < min the range collapses to min.
func (r *RNG) IntRange(min, max int) int {
	if max <= min {
		// A collapsed range still consumes one draw.
		r.r.Uint64()
		return min
	}
	return min + r.r.IntN(max-min+1)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
