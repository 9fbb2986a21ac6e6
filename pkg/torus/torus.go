// Package torus holds the pieces shared by the 2D and 3D grid engines:
// toroidal axis arithmetic, the birth/survival rule, seeding sources and the
// per-generation report handed to the presentation layer.
package torus

// WrapHigh wraps an index that stepped one past the end of an axis of length n.
func WrapHigh(i, n int) int {
	if i >= n {
		return 0
	}
	return i
}

// WrapLow wraps an index that stepped one before the start of an axis of length n.
func WrapLow(i, n int) int {
	if i < 0 {
		return n - 1
	}
	return i
}

// Ring returns the three indices {i-1, i, i+1} on an axis of length n with
// toroidal wrapping applied to both ends.
func Ring(i, n int) [3]int {
	return [3]int{WrapLow(i-1, n), i, WrapHigh(i+1, n)}
}

// Coord addresses a single cell. Z is always zero on 2D grids.
type Coord struct {
	X, Y, Z int
}

// Report describes the outcome of one committed generation.
type Report struct {
	// Generation is the number of generations committed since the grid was populated.
	Generation int
	// Changed lists every cell whose alive flag flipped, in offset order.
	Changed []Coord
	// Alive enumerates every living cell in offset order. Only 3D engines fill it.
	Alive []Coord
	// AliveCount is the number of living cells after the commit.
	AliveCount int
	// Frozen is set by 3D engines when no cell changed.
	Frozen bool
}
