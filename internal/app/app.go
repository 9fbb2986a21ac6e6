//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Runner to the ebiten.Game interface.
type Game struct {
	runner  *Runner
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	cadence *core.FixedStep
	picks   PickTracker

	onColor  color.Color
	offColor color.Color

	scale    int
	tickOnce bool
	seed     int64
	err      error
}

// PanelWidth is the width of the status panel right of the grid.
const PanelWidth = 220

// New constructs a Game for the provided runner.
func New(runner *Runner, scale int, interval time.Duration, seed int64) *Game {
	return &Game{
		runner:   runner,
		painter:  render.NewGridPainter(runner.Sim().Size()),
		hud:      ui.NewHUD(PanelWidth),
		overlay:  ui.NewOverlay(scale),
		cadence:  core.NewFixedStep(interval),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	if err := g.runner.Reset(seed); err != nil {
		g.err = err
	}
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation on its cadence.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.overlay.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if sel, ok := g.runner.Sim().(core.Selector); ok && sel.Selecting() {
		g.updateSelection(sel)
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			if err := g.runner.FinishSelection(); err != nil {
				return err
			}
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.runner.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	due := g.cadence.ShouldStep()
	switch {
	case g.tickOnce:
		g.tickOnce = false
		paused := g.runner.Paused()
		g.runner.Resume()
		_, _, err := g.runner.Tick()
		if paused {
			g.runner.Pause()
		}
		return err
	case due:
		_, _, err := g.runner.Tick()
		return err
	}
	return nil
}

func (g *Game) updateSelection(sel core.Selector) {
	size := g.runner.Sim().Size()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		c, hit := CellAt(x, y, g.scale, size)
		g.picks.Down(c, hit)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if c, ok := g.picks.Up(CellAt(x, y, g.scale, size)); ok {
			if err := sel.Toggle(c.X, c.Y); err != nil {
				g.err = err
			}
		}
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	sim := g.runner.Sim()
	size := sim.Size()
	g.painter.Blit(screen, sim.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, g.runner.Last(), size)
	g.hud.Update(sim.Name(), g.status(), sim.Parameters())
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

func (g *Game) status() ui.Status {
	last := g.runner.Last()
	st := ui.Status{
		Generation: last.Generation,
		AliveCount: last.AliveCount,
		Changed:    len(last.Changed),
		Frozen:     last.Frozen,
		Paused:     g.runner.Paused(),
	}
	if sel, ok := g.runner.Sim().(core.Selector); ok {
		st.Selecting = sel.Selecting()
	}
	if last.Generation == 0 {
		for _, c := range g.runner.Sim().Cells() {
			st.AliveCount += int(c)
		}
	}
	return st
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.runner.Sim().Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
