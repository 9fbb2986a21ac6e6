// Package life3d implements Carter Bays' 4555 rule on a toroidal 3D grid.
package life3d

import (
	"fmt"

	"lifegrid/pkg/torus"
)

// Engine owns one X×Y×Z grid and advances it under the 4555 rule.
// An Engine is not safe for concurrent use.
type Engine struct {
	cfg       torus.Config
	rule      torus.Rule
	w, h, d   int
	cur       []uint8
	nxt       []uint8
	populated bool
	frozen    bool
	gen       int
}

// New returns an unconfigured engine.
func New(cfg torus.Config) *Engine {
	return &Engine{cfg: cfg.Normalize(), rule: torus.Bays4555}
}

// Configure sets the grid dimensions. It cannot be repeated without a Reset.
func (e *Engine) Configure(w, h, d int) error {
	if e.cur != nil {
		return fmt.Errorf("configure %dx%dx%d: %w", w, h, d, torus.ErrAlreadyConfigured)
	}
	if w <= 0 || h <= 0 || d <= 0 {
		return fmt.Errorf("%w: %dx%dx%d", torus.ErrInvalidSize, w, h, d)
	}
	e.w, e.h, e.d = w, h, d
	e.cur = make([]uint8, w*h*d)
	e.nxt = make([]uint8, w*h*d)
	e.populated = false
	e.frozen = false
	e.gen = 0
	return nil
}

// Populate seeds the grid. Only random seeding is offered in 3D.
func (e *Engine) Populate(mode torus.Mode) error {
	if e.cur == nil {
		return torus.ErrNotConfigured
	}
	if mode != torus.Random {
		return fmt.Errorf("life3d: %w: %v", torus.ErrUnsupportedMode, mode)
	}
	torus.FillThreshold(e.cfg.Source, e.cur, e.cfg.Threshold)
	e.populated = true
	e.frozen = false
	e.gen = 0
	return nil
}

// Load replaces the grid with exactly the given live cells. Nothing changes if
// any coordinate is out of range.
func (e *Engine) Load(alive []torus.Coord) error {
	if e.cur == nil {
		return torus.ErrNotConfigured
	}
	for _, c := range alive {
		if _, err := e.offset(c); err != nil {
			return err
		}
	}
	clear(e.cur)
	for _, c := range alive {
		i, _ := e.offset(c)
		e.cur[i] = 1
	}
	e.populated = true
	e.frozen = false
	e.gen = 0
	return nil
}

// Advance computes and commits the next generation. The report enumerates
// every living cell and sets Frozen when nothing changed.
func (e *Engine) Advance() (torus.Report, error) {
	if err := e.ready(); err != nil {
		return torus.Report{}, err
	}
	torus.Split(e.cfg.Workers, len(e.cur), e.computeRange)
	return e.commit(), nil
}

// IsAlive reports whether the cell at (x, y, z) is alive.
func (e *Engine) IsAlive(x, y, z int) (bool, error) {
	if err := e.ready(); err != nil {
		return false, err
	}
	i, err := e.offset(torus.Coord{X: x, Y: y, Z: z})
	if err != nil {
		return false, err
	}
	return e.cur[i] == 1, nil
}

// CountLivingNeighbours returns how many of the 26 wrapped neighbours of
// (x, y, z) are alive.
func (e *Engine) CountLivingNeighbours(x, y, z int) (int, error) {
	if err := e.ready(); err != nil {
		return 0, err
	}
	if _, err := e.offset(torus.Coord{X: x, Y: y, Z: z}); err != nil {
		return 0, err
	}
	return e.neighbours(x, y, z), nil
}

// Frozen reports whether the last generation left every cell unchanged.
func (e *Engine) Frozen() bool { return e.frozen }

// Reset discards the grid and returns the engine to its unconfigured state.
func (e *Engine) Reset() {
	e.w, e.h, e.d = 0, 0, 0
	e.cur, e.nxt = nil, nil
	e.populated = false
	e.frozen = false
	e.gen = 0
}

// Size returns the configured dimensions.
func (e *Engine) Size() (w, h, d int) { return e.w, e.h, e.d }

// Generation returns the number of generations committed since populating.
func (e *Engine) Generation() int { return e.gen }

// Cells exposes the current generation indexed by x + y*w + z*w*h.
func (e *Engine) Cells() []uint8 { return e.cur }

func (e *Engine) ready() error {
	if e.cur == nil {
		return torus.ErrNotConfigured
	}
	if !e.populated {
		return fmt.Errorf("%w: grid not populated", torus.ErrNotConfigured)
	}
	return nil
}

func (e *Engine) offset(c torus.Coord) (int, error) {
	if c.X < 0 || c.X >= e.w || c.Y < 0 || c.Y >= e.h || c.Z < 0 || c.Z >= e.d {
		return 0, &torus.IndexError{Coord: c, Size: torus.Coord{X: e.w, Y: e.h, Z: e.d}}
	}
	return c.X + c.Y*e.w + c.Z*e.w*e.h, nil
}

func (e *Engine) coord(i int) torus.Coord {
	plane := e.w * e.h
	return torus.Coord{X: i % e.w, Y: (i % plane) / e.w, Z: i / plane}
}

func (e *Engine) neighbours(x, y, z int) int {
	n := 0
	plane := e.w * e.h
	xs := torus.Ring(x, e.w)
	ys := torus.Ring(y, e.h)
	for _, nz := range torus.Ring(z, e.d) {
		for _, ny := range ys {
			row := nz*plane + ny*e.w
			for _, nx := range xs {
				n += int(e.cur[row+nx])
			}
		}
	}
	return n - int(e.cur[x+y*e.w+z*plane])
}

// compute writes the next state of cell i into the back buffer. It reads only
// the front buffer, so cells may be evaluated in any order.
func (e *Engine) compute(i int) {
	c := e.coord(i)
	e.nxt[i] = e.rule.Step(e.cur[i], e.neighbours(c.X, c.Y, c.Z))
}

func (e *Engine) computeRange(lo, hi int) {
	for i := lo; i < hi; i++ {
		e.compute(i)
	}
}

func (e *Engine) commit() torus.Report {
	var rep torus.Report
	for i, next := range e.nxt {
		if next != e.cur[i] {
			rep.Changed = append(rep.Changed, e.coord(i))
		}
		if next == 1 {
			rep.Alive = append(rep.Alive, e.coord(i))
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.gen++
	e.frozen = len(rep.Changed) == 0
	rep.AliveCount = len(rep.Alive)
	rep.Frozen = e.frozen
	rep.Generation = e.gen
	return rep
}
