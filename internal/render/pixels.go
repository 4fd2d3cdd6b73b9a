package render

import (
	"image/color"

	"casim/internal/core"
	"casim/internal/rules"
)

// Default colors for the off state, the on state and the hottest state of a
// multi-state grid.
var (
	Off = color.RGBA{A: 255}
	On  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Hot = color.RGBA{R: 255, G: 96, B: 32, A: 255}
)

// Palette returns one color per state. State 0 is off and state 1 is on;
// states above 1 blend from on toward hot.
func Palette(states int, off, on, hot color.RGBA) []color.RGBA {
	if states < 2 {
		states = 2
	}
	p := make([]color.RGBA, states)
	p[0] = off
	p[1] = on
	span := states - 2
	for s := 2; s < states; s++ {
		p[s] = lerpRGBA(on, hot, float64(s-1)/float64(span))
	}
	return p
}

// PaletteFor sizes a palette for the states a simulation can produce: two
// for 1D lines, the rule length for ants and the full byte for totalistic
// grids.
func PaletteFor(sim core.Sim) []color.RGBA {
	states := 256
	switch sim.Family() {
	case rules.Elementary:
		states = 2
	case rules.Ant:
		if r, ok := sim.(interface{ Rule() rules.AntRule }); ok {
			states = r.Rule().States()
		}
	}
	return Palette(states, Off, On, Hot)
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last color. When the palette is
// empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
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

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
