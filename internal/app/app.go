//go:build ebiten

package app

import (
	"time"

	"casim/internal/core"
	"casim/internal/render"
	"casim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Burst sizes for the 1, 2 and 3 keys.
var bursts = map[ebiten.Key]int{
	ebiten.KeyDigit1: 50,
	ebiten.KeyDigit2: 100,
	ebiten.KeyDigit3: 500,
}

type antEditor interface {
	AddAnt(i int) bool
	RemoveAnt(i int) bool
	ClearAnts()
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	cfg     core.Config
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep

	view     core.Size
	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation. Cells are drawn at the
// configured cell size and advanced at the configured interval.
func New(sim core.Sim, cfg core.Config) *Game {
	view := sim.Size()
	if f, ok := sim.(core.Framer); ok {
		view = f.FrameSize()
	}
	scale := cfg.CellSize
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		sim:     sim,
		cfg:     cfg,
		painter: render.NewGridPainter(view.W, view.H, render.PaletteFor(sim)),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, hudWidth),
		timer:   core.NewFixedStep(cfg.Interval()),
		view:    view,
		scale:   scale,
		paused:  true,
	}
}

// WindowSize returns the outer window size in pixels.
func (g *Game) WindowSize() (int, int) {
	return g.view.W*g.scale + hudWidth, g.view.H * g.scale
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.tickOnce = true
	}
	for key, n := range bursts {
		if inpututil.IsKeyJustPressed(key) {
			core.Run(g.sim, n)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.cfg.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.sim.Grid().Randomize(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sim.Grid().Clear()
		if ed, ok := g.sim.(antEditor); ok {
			ed.ClearAnts()
		}
	}
	g.handleMouse()
	g.overlay.Update()

	if (!g.paused && g.timer.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}

	status := "running"
	if g.paused {
		status = "paused"
	}
	g.hud.Update(status)
	return nil
}

// handleMouse maps pointer input onto cell edits: left sets a cell, right
// clears it, the wheel bumps its state and the middle button adds an ant
// (shift removes one).
func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	x, y := mx/g.scale, my/g.scale
	grid := g.sim.Grid()
	if mx < 0 || my < 0 || !grid.Contains(x, y) {
		return
	}
	i := grid.Index(x, y)

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		grid.Set(i, 1)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		grid.Set(i, 0)
	}
	if _, dy := ebiten.Wheel(); dy > 0 {
		grid.Increment(i)
	} else if dy < 0 {
		grid.Decrement(i)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		if ed, ok := g.sim.(antEditor); ok {
			if ebiten.IsKeyPressed(ebiten.KeyShift) {
				ed.RemoveAnt(i)
			} else {
				ed.AddAnt(i)
			}
		}
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.view.W*g.scale, g.view.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
