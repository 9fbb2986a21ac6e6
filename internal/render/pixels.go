// Package render converts cell buffers into RGBA pixels for the viewer.
package render

import (
	"image/color"

	"lifegrid/internal/core"
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// ProjectColumns writes, for every (x, y), the number of living cells along
// the z axis of a 3D buffer into dst. Counts saturate at 255.
func ProjectColumns(dst, cells []uint8, size core.Size) {
	plane := size.W * size.H
	clear(dst[:plane])
	for z := 0; z < size.D; z++ {
		layer := cells[z*plane : (z+1)*plane]
		for i, c := range layer {
			if c != 0 && dst[i] < 255 {
				dst[i]++
			}
		}
	}
}

// GrayRamp returns n+1 colours from black to white so that a column with k
// living cells out of n maps to palette[k].
func GrayRamp(n int) []color.RGBA {
	if n < 1 {
		n = 1
	}
	if n > 255 {
		n = 255
	}
	out := make([]color.RGBA, n+1)
	for k := range out {
		v := uint8(k * 255 / n)
		out[k] = color.RGBA{R: v, G: v, B: v, A: 0xff}
	}
	return out
}
