package app

import (
	"lifegrid/internal/core"
	"lifegrid/pkg/torus"
)

// PickTracker pairs pointer-down and pointer-up events so that a drag used to
// move the view never toggles a cell: a pick fires only when both events land
// on the same cell.
type PickTracker struct {
	active bool
	cell   torus.Coord
}

// Down records the cell under the pointer. hit is false when the pointer is
// outside the grid.
func (p *PickTracker) Down(c torus.Coord, hit bool) {
	p.active = hit
	p.cell = c
}

// Up returns the cell to toggle, if any, and clears the pending pick.
func (p *PickTracker) Up(c torus.Coord, hit bool) (torus.Coord, bool) {
	pending := p.active
	p.active = false
	if !pending || !hit || c != p.cell {
		return torus.Coord{}, false
	}
	return c, true
}

// CellAt maps a screen position to a cell of a flat grid drawn at scale.
func CellAt(px, py, scale int, size core.Size) (torus.Coord, bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return torus.Coord{}, false
	}
	x, y := px/scale, py/scale
	if x >= size.W || y >= size.H {
		return torus.Coord{}, false
	}
	return torus.Coord{X: x, Y: y}, true
}
