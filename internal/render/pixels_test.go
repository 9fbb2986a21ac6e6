package render

import (
	"image/color"
	"slices"
	"testing"

	"lifegrid/internal/core"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.Black)
	want := []byte{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0xff}
	if !slices.Equal(buf, want) {
		t.Fatalf("pixels=%v, expected %v", buf, want)
	}
}

func TestProjectColumns(t *testing.T) {
	size := core.Size{W: 2, H: 1, D: 3}
	// layers z=0..2, each {x0, x1}
	cells := []uint8{1, 0, 1, 0, 1, 1}
	dst := make([]uint8, 2)
	ProjectColumns(dst, cells, size)
	if !slices.Equal(dst, []uint8{3, 1}) {
		t.Fatalf("columns=%v, expected [3 1]", dst)
	}
}

func TestGrayRampAndPalette(t *testing.T) {
	ramp := GrayRamp(4)
	if len(ramp) != 5 || ramp[0].R != 0 || ramp[4].R != 0xff {
		t.Fatalf("unexpected ramp %v", ramp)
	}
	buf := make([]byte, 8)
	fillPaletteRGBA(buf, []uint8{2, 9}, ramp)
	if buf[0] != ramp[2].R || buf[4] != 0xff {
		t.Fatalf("palette lookup wrong: %v", buf)
	}
	fillPaletteRGBA(buf, []uint8{2, 9}, nil)
	if !slices.Equal(buf, make([]byte, 8)) {
		t.Fatalf("empty palette must clear pixels, got %v", buf)
	}
}
