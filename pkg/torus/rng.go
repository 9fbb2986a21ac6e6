package torus

import "math/rand/v2"

// Source is the uniform [0,1) source used to seed grids.
type Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillThreshold sets each cell to 1 when its draw lies above threshold and to 0
// otherwise.
func FillThreshold(src Source, buf []uint8, threshold float64) {
	for i := range buf {
		buf[i] = 0
		if src.Float64() > threshold {
			buf[i] = 1
		}
	}
}
