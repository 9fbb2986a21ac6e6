//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifegrid/internal/core"
	"lifegrid/pkg/torus"
)

// Overlay highlights the cells that flipped in the last generation. Key 1
// toggles it.
type Overlay struct {
	scale int
	show  bool
	pixel *ebiten.Image
	tint  color.RGBA
}

// NewOverlay constructs a hidden overlay for the given cell scale.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale, tint: color.RGBA{R: 255, G: 120, B: 40, A: 160}}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.show }

// Draw marks every changed cell of rep. 3D cells are drawn at their column.
func (o *Overlay) Draw(screen *ebiten.Image, rep torus.Report, size core.Size) {
	if !o.show || len(rep.Changed) == 0 || size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	for _, c := range rep.Changed {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(scale), float64(scale))
		op.GeoM.Translate(float64(c.X*scale), float64(c.Y*scale))
		op.ColorScale.ScaleWithColor(o.tint)
		screen.DrawImage(o.pixel, op)
	}
}
