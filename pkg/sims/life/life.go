// Package life implements Conway's Game of Life on a toroidal 2D grid.
package life

import (
	"fmt"

	"lifegrid/pkg/torus"
)

// Engine owns one X×Y grid and advances it under the 2-3 rule.
// An Engine is not safe for concurrent use.
type Engine struct {
	cfg   torus.Config
	rule  torus.Rule
	w, h  int
	cur   []uint8
	nxt   []uint8
	phase Phase
	gen   int
}

// New returns an unconfigured engine.
func New(cfg torus.Config) *Engine {
	return &Engine{cfg: cfg.Normalize(), rule: torus.Conway}
}

// Configure sets the grid dimensions. It must be called before Populate and
// cannot be repeated without a Reset.
func (e *Engine) Configure(w, h int) error {
	if e.cur != nil {
		return fmt.Errorf("configure %dx%d: %w", w, h, torus.ErrAlreadyConfigured)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", torus.ErrInvalidSize, w, h)
	}
	e.w, e.h = w, h
	e.cur = make([]uint8, w*h)
	e.nxt = make([]uint8, w*h)
	e.phase = Idle
	e.gen = 0
	return nil
}

// Populate seeds the grid. Random seeding starts the run immediately; Empty
// opens a selection phase for ToggleCell.
func (e *Engine) Populate(mode torus.Mode) error {
	if e.cur == nil {
		return torus.ErrNotConfigured
	}
	switch mode {
	case torus.Random:
		torus.FillThreshold(e.cfg.Source, e.cur, e.cfg.Threshold)
		e.phase = Running
	case torus.Empty:
		clear(e.cur)
		e.phase = Selecting
	default:
		return fmt.Errorf("life: %w: %v", torus.ErrUnsupportedMode, mode)
	}
	e.gen = 0
	return nil
}

// Load replaces the grid with exactly the given live cells and opens a
// selection phase. Nothing changes if any coordinate is out of range.
func (e *Engine) Load(alive []torus.Coord) error {
	if e.cur == nil {
		return torus.ErrNotConfigured
	}
	for _, c := range alive {
		if _, err := e.offset(c.X, c.Y); err != nil {
			return err
		}
	}
	clear(e.cur)
	for _, c := range alive {
		e.cur[c.Y*e.w+c.X] = 1
	}
	e.phase = Selecting
	e.gen = 0
	return nil
}

// Advance computes the next generation from the current one and commits it.
func (e *Engine) Advance() (torus.Report, error) {
	if err := e.ready(); err != nil {
		return torus.Report{}, err
	}
	if e.phase != Running {
		return torus.Report{}, fmt.Errorf("advance while %s: %w", e.phase, torus.ErrInvalidState)
	}
	torus.Split(e.cfg.Workers, len(e.cur), e.computeRange)
	return e.commit(), nil
}

// IsAlive reports whether the cell at (x, y) is alive.
func (e *Engine) IsAlive(x, y int) (bool, error) {
	if err := e.ready(); err != nil {
		return false, err
	}
	i, err := e.offset(x, y)
	if err != nil {
		return false, err
	}
	return e.cur[i] == 1, nil
}

// CountLivingNeighbours returns how many of the 8 wrapped neighbours of (x, y) are alive.
func (e *Engine) CountLivingNeighbours(x, y int) (int, error) {
	if err := e.ready(); err != nil {
		return 0, err
	}
	if _, err := e.offset(x, y); err != nil {
		return 0, err
	}
	return e.neighbours(x, y), nil
}

// Reset discards the grid and returns the engine to its unconfigured state.
func (e *Engine) Reset() {
	e.w, e.h = 0, 0
	e.cur, e.nxt = nil, nil
	e.phase = Idle
	e.gen = 0
}

// Size returns the configured dimensions.
func (e *Engine) Size() (w, h int) { return e.w, e.h }

// Generation returns the number of generations committed since populating.
func (e *Engine) Generation() int { return e.gen }

// Cells exposes the current generation in row-major order. Callers must not
// retain it across Advance.
func (e *Engine) Cells() []uint8 { return e.cur }

func (e *Engine) ready() error {
	if e.cur == nil {
		return torus.ErrNotConfigured
	}
	if e.phase == Idle {
		return fmt.Errorf("%w: grid not populated", torus.ErrNotConfigured)
	}
	return nil
}

func (e *Engine) offset(x, y int) (int, error) {
	if x < 0 || x >= e.w || y < 0 || y >= e.h {
		return 0, &torus.IndexError{
			Coord: torus.Coord{X: x, Y: y},
			Size:  torus.Coord{X: e.w, Y: e.h, Z: 1},
		}
	}
	return y*e.w + x, nil
}

func (e *Engine) neighbours(x, y int) int {
	n := 0
	xs := torus.Ring(x, e.w)
	for _, ny := range torus.Ring(y, e.h) {
		row := ny * e.w
		for _, nx := range xs {
			n += int(e.cur[row+nx])
		}
	}
	return n - int(e.cur[y*e.w+x])
}

// compute writes the next state of cell i into the back buffer. It reads only
// the front buffer, so cells may be evaluated in any order.
func (e *Engine) compute(i int) {
	n := e.neighbours(i%e.w, i/e.w)
	e.nxt[i] = e.rule.Step(e.cur[i], n)
}

func (e *Engine) computeRange(lo, hi int) {
	for i := lo; i < hi; i++ {
		e.compute(i)
	}
}

// commit diffs the buffers, swaps them and bumps the generation counter.
func (e *Engine) commit() torus.Report {
	var rep torus.Report
	for i, next := range e.nxt {
		if next != e.cur[i] {
			rep.Changed = append(rep.Changed, torus.Coord{X: i % e.w, Y: i / e.w})
		}
		rep.AliveCount += int(next)
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.gen++
	rep.Generation = e.gen
	return rep
}
