package core

import (
	"sort"

	"lifegrid/pkg/torus"
)

// Size describes the dimensions of a simulation grid. D is 1 for flat grids.
type Size struct {
	W int
	H int
	D int
}

// Cells returns the number of cells in a grid of this size.
func (s Size) Cells() int { return s.W * s.H * s.D }

// Sim is the contract the driver and viewer run a grid engine through.
type Sim interface {
	Name() string
	Size() Size
	// Reset discards the grid, then configures and populates it again using seed.
	Reset(seed int64) error
	// Step advances one generation.
	Step() (torus.Report, error)
	// Cells exposes the current generation in offset order.
	Cells() []uint8
	Parameters() ParameterSnapshot
}

// Selector is implemented by sims that let the user paint a starting pattern.
type Selector interface {
	Selecting() bool
	Toggle(x, y int) error
	Start() error
}

// Factory constructs a Sim using an optional flag-style configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
