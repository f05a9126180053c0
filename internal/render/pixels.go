package render

import (
	"image/color"

	"game-of-life/internal/core"
)

// Canvas lays a grid out as square cells separated by one-pixel grid lines.
type Canvas struct {
	CellSize int

	Grid  color.Color
	Dead  color.Color
	Alive color.Color
}

// DefaultCanvas returns 5px cells with light grey lines, white dead cells and
// black live cells.
func DefaultCanvas() Canvas {
	return Canvas{
		CellSize: 5,
		Grid:     color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF},
		Dead:     color.White,
		Alive:    color.Black,
	}
}

func (c Canvas) pitch() int {
	if c.CellSize <= 0 {
		return 2
	}
	return c.CellSize + 1
}

// Bounds returns the pixel size of a w x h grid.
func (c Canvas) Bounds(w, h int) (int, int) {
	p := c.pitch()
	return p*w + 1, p*h + 1
}

// CellAt maps a pixel to the cell under it, clamping to the last row and
// column. ok is false for pixels left of or above the grid.
func (c Canvas) CellAt(x, y, w, h int) (row, col int, ok bool) {
	if x < 0 || y < 0 || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	p := c.pitch()
	row = min(y/p, h-1)
	col = min(x/p, w-1)
	return row, col, true
}

// Fill paints cells into buf as RGBA pixels. buf must hold Bounds(w, h)
// pixels and cells must hold w*h entries.
func (c Canvas) Fill(buf []byte, cells core.BitView, w, h int) {
	bw, bh := c.Bounds(w, h)
	if len(buf) < 4*bw*bh || cells.Len() != w*h {
		return
	}
	grid, dead, alive := rgba(c.Grid), rgba(c.Dead), rgba(c.Alive)
	for i := 0; i < bw*bh; i++ {
		copy(buf[i*4:], grid[:])
	}
	p := c.pitch()
	size := p - 1
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			px := dead
			if cells.Get(row*w + col) {
				px = alive
			}
			x0, y0 := col*p+1, row*p+1
			for y := y0; y < y0+size; y++ {
				base := (y*bw + x0) * 4
				for x := 0; x < size; x++ {
					copy(buf[base+x*4:], px[:])
				}
			}
		}
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
