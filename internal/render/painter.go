//go:build ebiten

package render

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from a sim's cell buffer. Flat grids
// are painted cell per pixel; 3D grids as a top-down column density.
type GridPainter struct {
	size    core.Size
	img     *ebiten.Image
	buf     []byte
	column  []uint8
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	gp := &GridPainter{size: size, buf: make([]byte, 4*size.W*size.H)}
	if size.D > 1 {
		gp.column = make([]uint8, size.W*size.H)
		gp.palette = GrayRamp(size.D)
	}
	gp.img = ebiten.NewImage(size.W, size.H)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.size.Cells() {
		return
	}
	if gp.column != nil {
		ProjectColumns(gp.column, cells, gp.size)
		fillPaletteRGBA(gp.buf, gp.column, gp.palette)
	} else {
		fillBinaryRGBA(gp.buf, cells, on, off)
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.size.W, gp.size.H }
