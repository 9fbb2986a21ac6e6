package torus

// Rule is a birth/survival rule over an outer-totalistic neighbourhood.
type Rule struct {
	SurviveMin int
	SurviveMax int
	Birth      int
}

var (
	// Conway is the standard 2D rule: survive on 2-3, born on 3.
	Conway = Rule{SurviveMin: 2, SurviveMax: 3, Birth: 3}
	// Bays4555 is Carter Bays' 3D rule: survive on 4-5, born on 5.
	Bays4555 = Rule{SurviveMin: 4, SurviveMax: 5, Birth: 5}
)

// Next returns the next alive flag for a cell with n living neighbours.
func (r Rule) Next(alive bool, n int) bool {
	if alive {
		return n >= r.SurviveMin && n <= r.SurviveMax
	}
	return n == r.Birth
}

// Step is Next over the byte encoding used by the cell buffers.
func (r Rule) Step(state uint8, n int) uint8 {
	if r.Next(state == 1, n) {
		return 1
	}
	return 0
}
