package elementary

import (
	"casim/internal/core"
	"casim/internal/rules"
)

// Elementary implements a one-dimensional binary automaton driven by an
// eight-entry rule table. Every generation is kept in a scrolling history
// strip, newest on top.
type Elementary struct {
	cfg   core.Config
	grid  *core.Grid
	table rules.ElementaryTable

	next       []uint8
	history    []uint8
	height     int
	generation int
}

// New returns an unconfigured automaton; call Configure before stepping.
func New() *Elementary {
	return &Elementary{}
}

// NewWithConfig builds and configures an automaton.
func NewWithConfig(cfg core.Config) (*Elementary, error) {
	e := New()
	if err := e.Configure(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// Configure replaces the line and rule. The line is cleared and the
// generation counter reset. On error nothing changes.
func (e *Elementary) Configure(cfg core.Config) error {
	if err := core.CheckDimensions(rules.Elementary, cfg.Rows, cfg.Columns); err != nil {
		return err
	}
	table, err := rules.ParseElementary(cfg.Rule)
	if err != nil {
		return err
	}
	height := cfg.History
	if height <= 0 {
		height = cfg.Rows
	}
	if height <= 0 {
		height = 1
	}

	cfg.Family = rules.Elementary
	e.cfg = cfg
	e.grid = core.NewGrid(1, cfg.Columns, cfg.CellSize, cfg.Wrap)
	e.table = table
	e.next = make([]uint8, cfg.Columns)
	e.height = height
	e.history = make([]uint8, cfg.Columns*height)
	e.generation = 0
	return nil
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Family reports the rule family.
func (e *Elementary) Family() rules.Family { return rules.Elementary }

// Size returns the line dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.cfg.Columns, H: 1} }

// Cells exposes the current line.
func (e *Elementary) Cells() []uint8 { return e.grid.Cells() }

// Grid exposes the underlying topology.
func (e *Elementary) Grid() *core.Grid { return e.grid }

// Table returns the parsed rule.
func (e *Elementary) Table() rules.ElementaryTable { return e.table }

// Generation returns the number of advances since the last reset.
func (e *Elementary) Generation() int { return e.generation }

// ResetGenerations sets the generation counter back to zero.
func (e *Elementary) ResetGenerations() { e.generation = 0 }

// Frame exposes the history strip, newest generation on row 0.
func (e *Elementary) Frame() []uint8 { return e.history }

// FrameSize returns the history strip dimensions.
func (e *Elementary) FrameSize() core.Size { return core.Size{W: e.cfg.Columns, H: e.height} }

// Reset clears the line and history. A zero seed activates the single centre
// cell; any other seed fills the line with random 0/1 values.
func (e *Elementary) Reset(seed int64) {
	e.grid.Clear()
	for i := range e.history {
		e.history[i] = 0
	}
	if seed == 0 {
		e.SeedCenter()
	} else {
		e.grid.Randomize(seed)
	}
	copy(e.history, e.grid.Cells())
	e.generation = 0
}

// SeedCenter activates the centre cell.
func (e *Elementary) SeedCenter() {
	e.grid.Set(e.cfg.Columns/2, 1)
}

// Step computes the next generation from the current line, then commits it
// and scrolls the history strip down by one row.
func (e *Elementary) Step() {
	g := e.grid
	cur := g.Cells()
	for i := range cur {
		left := g.State(g.Neighbor(i, core.Left)) == 1
		right := g.State(g.Neighbor(i, core.Right)) == 1
		e.next[i] = e.table.Lookup(left, cur[i] == 1, right)
	}
	copy(g.Prev(), cur)
	copy(cur, e.next)
	e.generation++

	w := e.cfg.Columns
	copy(e.history[w:], e.history[:w*(e.height-1)])
	copy(e.history[:w], cur)
}

// Parameters describes the active configuration.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return e.cfg.Parameters().With(core.ParameterGroup{
		Name: "Run",
		Params: []core.Parameter{
			core.IntParam("generation", "Generation", e.generation),
			core.IntParam("code", "Wolfram code", int(e.table.Code())),
			core.IntParam("history", "History rows", e.height),
		},
	})
}

func init() {
	core.Register(rules.Elementary, func() core.Sim { return New() })
}
