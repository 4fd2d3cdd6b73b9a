//go:build ebiten

package render

import (
	"image/color"

	"casim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads cell states into a single RGBA image, one pixel per
// cell, and draws it scaled by the cell size.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette []color.RGBA) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: palette}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit draws the simulation's display buffer: the history strip for 1D
// lines, the cells otherwise.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, scale int) {
	cells := sim.Cells()
	if f, ok := sim.(core.Framer); ok {
		cells = f.Frame()
	}
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
