package life

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"lifegrid/pkg/torus"
)

func newLoaded(t *testing.T, w, h int, alive ...torus.Coord) *Engine {
	t.Helper()
	e := New(torus.DefaultConfig())
	if err := e.Configure(w, h); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if err := e.Load(alive); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := e.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return e
}

func newRandom(t *testing.T, w, h, workers int, seed int64) *Engine {
	t.Helper()
	e := New(torus.Config{Seed: seed, Workers: workers})
	if err := e.Configure(w, h); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if err := e.Populate(torus.Random); err != nil {
		t.Fatalf("populate: %v", err)
	}
	return e
}

func expectAlive(t *testing.T, e *Engine, want map[[2]int]bool) {
	t.Helper()
	w, h := e.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			alive, err := e.IsAlive(x, y)
			if err != nil {
				t.Fatalf("IsAlive(%d,%d): %v", x, y, err)
			}
			if alive != want[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, want[[2]int{x, y}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := newLoaded(t, 5, 5, torus.Coord{X: 2, Y: 1}, torus.Coord{X: 2, Y: 2}, torus.Coord{X: 2, Y: 3})

	if _, err := life.Advance(); err != nil {
		t.Fatal(err)
	}
	expectAlive(t, life, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true})

	if _, err := life.Advance(); err != nil {
		t.Fatal(err)
	}
	expectAlive(t, life, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true})

	if got := life.Generation(); got != 2 {
		t.Fatalf("expected generation 2, got %d", got)
	}
}

func TestBlinkerAcrossSeam(t *testing.T) {
	// A vertical blinker straddling the top/bottom seam turns horizontal at row 0.
	life := newLoaded(t, 6, 6, torus.Coord{X: 0, Y: 5}, torus.Coord{X: 0, Y: 0}, torus.Coord{X: 0, Y: 1})
	if _, err := life.Advance(); err != nil {
		t.Fatal(err)
	}
	expectAlive(t, life, map[[2]int]bool{{5, 0}: true, {0, 0}: true, {1, 0}: true})
}

func TestNeighbourLookupWraps(t *testing.T) {
	e := newLoaded(t, 5, 4, torus.Coord{X: 4, Y: 3})
	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 1}, // diagonal across both seams
		{0, 3, 1}, // x wraps high
		{4, 0, 1}, // y wraps high
		{3, 2, 1},
		{2, 1, 0},
		{4, 3, 0}, // a cell is not its own neighbour
	}
	for _, tt := range tests {
		got, err := e.CountLivingNeighbours(tt.x, tt.y)
		if err != nil {
			t.Fatalf("CountLivingNeighbours(%d,%d): %v", tt.x, tt.y, err)
		}
		if got != tt.want {
			t.Fatalf("CountLivingNeighbours(%d,%d)=%d, expected %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestNeighbourCountBounds(t *testing.T) {
	var all []torus.Coord
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			all = append(all, torus.Coord{X: x, Y: y})
		}
	}
	full := newLoaded(t, 4, 4, all...)
	for _, c := range all {
		if n, _ := full.CountLivingNeighbours(c.X, c.Y); n != 8 {
			t.Fatalf("full grid cell (%d,%d) has %d neighbours, expected 8", c.X, c.Y, n)
		}
	}

	e := newRandom(t, 17, 13, 1, 3)
	for y := 0; y < 13; y++ {
		for x := 0; x < 17; x++ {
			n, err := e.CountLivingNeighbours(x, y)
			if err != nil || n < 0 || n > 8 {
				t.Fatalf("cell (%d,%d) neighbours=%d err=%v", x, y, n, err)
			}
		}
	}
}

func TestRuleTable(t *testing.T) {
	offsets := []torus.Coord{
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 2},
		{X: 3, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3},
	}
	for alive := 0; alive <= 1; alive++ {
		for n := 0; n <= 8; n++ {
			cells := slices.Clone(offsets[:n])
			if alive == 1 {
				cells = append(cells, torus.Coord{X: 2, Y: 2})
			}
			e := newLoaded(t, 5, 5, cells...)
			if got, _ := e.CountLivingNeighbours(2, 2); got != n {
				t.Fatalf("setup: centre has %d neighbours, expected %d", got, n)
			}
			if _, err := e.Advance(); err != nil {
				t.Fatal(err)
			}
			got, _ := e.IsAlive(2, 2)
			want := torus.Conway.Next(alive == 1, n)
			if alive == 1 && (n == 2 || n == 3) != want {
				t.Fatalf("rule table disagrees for survival with %d", n)
			}
			if alive == 0 && (n == 3) != want {
				t.Fatalf("rule table disagrees for birth with %d", n)
			}
			if got != want {
				t.Fatalf("alive=%d neighbours=%d: centre alive=%v, expected %v", alive, n, got, want)
			}
		}
	}
}

func TestSnapshotIsolation(t *testing.T) {
	sequential := newRandom(t, 32, 24, 1, 11)
	shuffled := newRandom(t, 32, 24, 1, 11)
	parallel := newRandom(t, 32, 24, 4, 11)
	order := rand.New(rand.NewPCG(5, 6))

	for gen := 0; gen < 12; gen++ {
		want, err := sequential.Advance()
		if err != nil {
			t.Fatal(err)
		}

		for _, i := range order.Perm(len(shuffled.cur)) {
			shuffled.compute(i)
		}
		got := shuffled.commit()

		par, err := parallel.Advance()
		if err != nil {
			t.Fatal(err)
		}

		if !slices.Equal(sequential.Cells(), shuffled.Cells()) {
			t.Fatalf("generation %d: shuffled evaluation diverged", gen+1)
		}
		if !slices.Equal(sequential.Cells(), parallel.Cells()) {
			t.Fatalf("generation %d: parallel evaluation diverged", gen+1)
		}
		if !slices.Equal(want.Changed, got.Changed) || !slices.Equal(want.Changed, par.Changed) {
			t.Fatalf("generation %d: changed sets differ", gen+1)
		}
	}
}

func TestSelectionScenario(t *testing.T) {
	e := New(torus.DefaultConfig())
	if err := e.Configure(10, 10); err != nil {
		t.Fatal(err)
	}
	if err := e.Populate(torus.Empty); err != nil {
		t.Fatal(err)
	}
	for _, c := range [][2]int{{4, 4}, {4, 5}, {4, 6}, {5, 4}, {5, 5}} {
		if err := e.ToggleCell(c[0], c[1]); err != nil {
			t.Fatalf("toggle %v: %v", c, err)
		}
	}
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	rep, err := e.Advance()
	if err != nil {
		t.Fatal(err)
	}

	expectAlive(t, e, map[[2]int]bool{
		{4, 4}: true,
		{4, 6}: true,
		{5, 4}: true,
		{3, 5}: true,
		{5, 6}: true,
	})
	wantChanged := []torus.Coord{{X: 3, Y: 5}, {X: 4, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 6}}
	if !slices.Equal(rep.Changed, wantChanged) {
		t.Fatalf("changed=%v, expected %v", rep.Changed, wantChanged)
	}
	if rep.AliveCount != 5 {
		t.Fatalf("alive count %d, expected 5", rep.AliveCount)
	}
	if rep.Frozen || rep.Alive != nil {
		t.Fatal("2D reports carry neither frozen flag nor alive enumeration")
	}
}

func TestToggleIsFlip(t *testing.T) {
	e := New(torus.DefaultConfig())
	_ = e.Configure(3, 3)
	_ = e.Populate(torus.Empty)

	for i, want := range []bool{true, false, true} {
		if err := e.ToggleCell(1, 2); err != nil {
			t.Fatal(err)
		}
		if got, _ := e.IsAlive(1, 2); got != want {
			t.Fatalf("after %d toggles alive=%v, expected %v", i+1, got, want)
		}
	}
}

func TestSelectionPhaseGuards(t *testing.T) {
	e := New(torus.DefaultConfig())
	_ = e.Configure(4, 4)
	_ = e.Populate(torus.Empty)
	if e.Phase() != Selecting {
		t.Fatalf("expected selecting after empty populate, got %s", e.Phase())
	}
	if _, err := e.Advance(); !errors.Is(err, torus.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState advancing during selection, got %v", err)
	}
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	if err := e.ToggleCell(0, 0); !errors.Is(err, torus.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState toggling while running, got %v", err)
	}
	if err := e.Start(); err != nil || e.Phase() != Running {
		t.Fatalf("start must stay running, phase=%s err=%v", e.Phase(), err)
	}

	r := newRandom(t, 4, 4, 1, 1)
	if r.Phase() != Running {
		t.Fatalf("random populate must run immediately, got %s", r.Phase())
	}
}

func TestOutOfRangeCoordinates(t *testing.T) {
	e := New(torus.DefaultConfig())
	_ = e.Configure(4, 3)
	_ = e.Populate(torus.Empty)

	for _, c := range [][2]int{{-1, 0}, {4, 0}, {0, 3}, {0, -1}} {
		if err := e.ToggleCell(c[0], c[1]); !errors.Is(err, torus.ErrIndexOutOfRange) {
			t.Fatalf("ToggleCell%v: expected ErrIndexOutOfRange, got %v", c, err)
		}
		if _, err := e.IsAlive(c[0], c[1]); !errors.Is(err, torus.ErrIndexOutOfRange) {
			t.Fatalf("IsAlive%v: expected ErrIndexOutOfRange, got %v", c, err)
		}
	}
	var idx *torus.IndexError
	if err := e.Load([]torus.Coord{{X: 1, Y: 1}, {X: 9, Y: 9}}); !errors.As(err, &idx) {
		t.Fatalf("expected *IndexError from Load, got %v", err)
	}
	if alive, _ := e.IsAlive(1, 1); alive {
		t.Fatal("failed Load must not modify the grid")
	}
}

func TestResetRequiresReconfigure(t *testing.T) {
	e := newRandom(t, 8, 8, 1, 9)
	e.Reset()

	if _, err := e.IsAlive(0, 0); !errors.Is(err, torus.ErrNotConfigured) {
		t.Fatalf("IsAlive after reset: %v", err)
	}
	if _, err := e.CountLivingNeighbours(0, 0); !errors.Is(err, torus.ErrNotConfigured) {
		t.Fatalf("CountLivingNeighbours after reset: %v", err)
	}
	if _, err := e.Advance(); !errors.Is(err, torus.ErrNotConfigured) {
		t.Fatalf("Advance after reset: %v", err)
	}
	if err := e.ToggleCell(0, 0); !errors.Is(err, torus.ErrNotConfigured) {
		t.Fatalf("ToggleCell after reset: %v", err)
	}
	if err := e.Populate(torus.Random); !errors.Is(err, torus.ErrNotConfigured) {
		t.Fatalf("Populate after reset: %v", err)
	}
	e.Reset()

	if err := e.Configure(6, 6); err != nil {
		t.Fatal(err)
	}
	if _, err := e.IsAlive(0, 0); !errors.Is(err, torus.ErrNotConfigured) {
		t.Fatalf("IsAlive before populate: %v", err)
	}
	if err := e.Populate(torus.Random); err != nil {
		t.Fatal(err)
	}
	if _, err := e.IsAlive(5, 5); err != nil {
		t.Fatalf("IsAlive after repopulate: %v", err)
	}
}

func TestConfigureGuards(t *testing.T) {
	e := New(torus.DefaultConfig())
	if err := e.Configure(0, 5); !errors.Is(err, torus.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
	if err := e.Configure(5, 5); err != nil {
		t.Fatal(err)
	}
	if err := e.Configure(6, 6); !errors.Is(err, torus.ErrAlreadyConfigured) {
		t.Fatalf("expected ErrAlreadyConfigured, got %v", err)
	}
}

func TestRandomPopulateDeterministic(t *testing.T) {
	a := newRandom(t, 20, 20, 1, 77)
	b := newRandom(t, 20, 20, 1, 77)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different grids")
	}
	c := newRandom(t, 20, 20, 1, 78)
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds should produce different grids")
	}
}
