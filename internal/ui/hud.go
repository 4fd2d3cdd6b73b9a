//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"casim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 8
	headerBaseline = 12
	lineHeight     = 16
	groupGap       = 6
)

var (
	panelBG    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	title      string
	status     string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Update refreshes the cached parameter snapshot and the status line.
func (h *HUD) Update(status string) {
	if h == nil {
		return
	}
	h.status = status
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBG)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	if h.status != "" {
		y += lineHeight
		text.Draw(h.panel, h.status, face, panelPadding, y, labelColor)
	}
	for _, g := range h.snapshot.Groups {
		y += lineHeight + groupGap
		text.Draw(h.panel, g.Name, face, panelPadding, y, titleColor)
		for _, p := range g.Params {
			y += lineHeight
			text.Draw(h.panel, p.Label, face, panelPadding, y, labelColor)
			value := p.Value
			bounds := text.BoundString(face, value)
			text.Draw(h.panel, value, face, h.width-panelPadding-bounds.Dx(), y, valueColor)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s automaton", strings.ToUpper(name[:1]), name[1:])
}
