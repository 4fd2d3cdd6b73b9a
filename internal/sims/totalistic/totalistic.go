package totalistic

import (
	"casim/internal/core"
	"casim/internal/rules"
)

// Totalistic advances a 2D grid with tb/tm/x threshold clauses.
//
// With dirty tracking enabled a cell is only re-evaluated when it or one of
// its Moore neighbors changed during the previous advance or was edited
// since. The first advance after Configure or Reset evaluates every cell.
type Totalistic struct {
	cfg   core.Config
	grid  *core.Grid
	rules rules.RuleSet

	next      []uint8
	committed []uint8
	queue     []int

	full          bool
	dirtyTracking bool
	generation    int
}

// New returns an unconfigured engine with dirty tracking enabled.
func New() *Totalistic {
	return &Totalistic{dirtyTracking: true}
}

// NewWithConfig builds and configures an engine.
func NewWithConfig(cfg core.Config) (*Totalistic, error) {
	t := New()
	if err := t.Configure(cfg); err != nil {
		return nil, err
	}
	return t, nil
}

// Configure replaces the grid and rule set. The new grid starts empty. On
// error nothing changes.
func (t *Totalistic) Configure(cfg core.Config) error {
	if err := core.CheckDimensions(rules.Totalistic, cfg.Rows, cfg.Columns); err != nil {
		return err
	}
	rs, err := rules.ParseTotalistic(cfg.Rule)
	if err != nil {
		return err
	}

	cfg.Family = rules.Totalistic
	t.cfg = cfg
	t.rules = rs
	t.grid = core.NewGrid(cfg.Rows, cfg.Columns, cfg.CellSize, cfg.Wrap)
	n := t.grid.Len()
	t.next = make([]uint8, n)
	t.committed = make([]uint8, n+1)
	t.queue = make([]int, 0, n)
	t.full = true
	t.generation = 0
	return nil
}

// Name returns the simulation identifier.
func (t *Totalistic) Name() string { return "totalistic" }

// Family reports the rule family.
func (t *Totalistic) Family() rules.Family { return rules.Totalistic }

// Size returns the grid dimensions.
func (t *Totalistic) Size() core.Size { return core.Size{W: t.cfg.Columns, H: t.cfg.Rows} }

// Cells exposes the current grid values.
func (t *Totalistic) Cells() []uint8 { return t.grid.Cells() }

// Grid exposes the underlying topology.
func (t *Totalistic) Grid() *core.Grid { return t.grid }

// Rules returns the parsed rule set.
func (t *Totalistic) Rules() rules.RuleSet { return t.rules }

// Generation returns the number of advances since the last reset.
func (t *Totalistic) Generation() int { return t.generation }

// Evaluated reports how many cells the last advance recomputed.
func (t *Totalistic) Evaluated() int { return len(t.queue) }

// DirtyTracking reports whether unchanged neighborhoods are skipped.
func (t *Totalistic) DirtyTracking() bool { return t.dirtyTracking }

// SetDirtyTracking toggles the skip optimization. Disabling it evaluates
// every cell on every advance.
func (t *Totalistic) SetDirtyTracking(on bool) {
	t.dirtyTracking = on
	t.full = true
}

// Reset clears the grid. A non-zero seed fills it with random 0/1 values.
func (t *Totalistic) Reset(seed int64) {
	t.grid.Clear()
	if seed != 0 {
		t.grid.Randomize(seed)
	}
	t.queue = t.queue[:0]
	t.full = true
	t.generation = 0
}

// Step advances one generation. All next states are computed from the
// current grid before any cell is written.
func (t *Totalistic) Step() {
	g := t.grid
	cur := g.Cells()

	t.queue = t.queue[:0]
	for i := range cur {
		if t.full || !t.dirtyTracking || t.touched(i) {
			t.queue = append(t.queue, i)
		}
	}
	for _, i := range t.queue {
		cardinal, moore := g.Sums(i)
		t.next[i] = t.rules.Next(cur[i], cardinal, moore)
	}

	// Skipped cells already satisfy state == prev.
	copy(g.Prev(), cur)
	for _, i := range t.queue {
		cur[i] = t.next[i]
	}
	copy(t.committed, cur)
	t.full = false
	t.generation++
}

// touched reports whether cell i or any Moore neighbor changed during the
// last advance or was written since.
func (t *Totalistic) touched(i int) bool {
	if t.changed(i) {
		return true
	}
	for _, n := range t.grid.Moore(i) {
		if t.changed(n) {
			return true
		}
	}
	return false
}

func (t *Totalistic) changed(i int) bool {
	s := t.grid.State(i)
	return s != t.grid.PrevState(i) || s != t.committed[i]
}

// Parameters describes the active configuration.
func (t *Totalistic) Parameters() core.ParameterSnapshot {
	return t.cfg.Parameters().With(core.ParameterGroup{
		Name: "Run",
		Params: []core.Parameter{
			core.IntParam("generation", "Generation", t.generation),
			core.IntParam("clauses", "Clauses", t.rules.Len()),
			core.BoolParam("dirty", "Dirty tracking", t.dirtyTracking),
			core.IntParam("evaluated", "Cells evaluated", len(t.queue)),
		},
	})
}

func init() {
	core.Register(rules.Totalistic, func() core.Sim { return New() })
}
