//go:build ebiten

package ui

import (
	"image/color"

	"casim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type antMarker interface {
	AntCells() []int
}

var antColor = color.RGBA{R: 255, G: 48, B: 48, A: 255}

// Overlay draws ant markers on top of the grid. M toggles them.
type Overlay struct {
	sim      core.Sim
	scale    int
	showAnts bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showAnts: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.showAnts = !o.showAnts
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showAnts {
		return
	}
	marker, ok := o.sim.(antMarker)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	g := o.sim.Grid()
	size := float64(scale)
	if scale > 2 {
		size = float64(scale) * 0.6
	}
	for _, i := range marker.AntCells() {
		x, y := g.Coord(i)
		cx := (float64(x) + 0.5) * float64(scale)
		cy := (float64(y) + 0.5) * float64(scale)
		o.drawPoint(screen, cx, cy, size, antColor)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
