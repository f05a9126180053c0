//go:build ebiten

package render

import (
	"game-of-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a single RGBA image in sync with the cell buffer.
type GridPainter struct {
	canvas Canvas
	w, h   int
	img    *ebiten.Image
	buf    []byte
}

// NewGridPainter allocates a painter for a grid of w x h cells.
func NewGridPainter(canvas Canvas, w, h int) *GridPainter {
	gp := &GridPainter{canvas: canvas}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	bw, bh := gp.canvas.Bounds(w, h)
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*bw*bh)
	gp.img = ebiten.NewImage(bw, bh)
}

// Blit uploads the cells into the painter image and draws it at scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells core.BitView, size core.Size, scale int) {
	if size.W != gp.w || size.H != gp.h {
		gp.resize(size.W, size.H)
	}
	gp.canvas.Fill(gp.buf, cells, gp.w, gp.h)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the pixel dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.canvas.Bounds(gp.w, gp.h) }
