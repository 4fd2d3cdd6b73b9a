package ant

import (
	"slices"

	"casim/internal/core"
	"casim/internal/rules"
)

// Ant types select the turning and movement model.
const (
	// TypeClockwise is the classic ant: state counts up, four facings.
	TypeClockwise = iota
	// TypeReverse counts the cell state down instead of up.
	TypeReverse
	// TypeMirrored swaps the meaning of l and r.
	TypeMirrored
	// TypeDiagonal has eight facings and moves diagonally on odd ones.
	TypeDiagonal

	maxType = TypeDiagonal
)

// Ant is one agent. Cell is always a live grid index.
type Ant struct {
	Cell      int
	Direction int
	Type      int
}

func (a Ant) facings() int {
	if a.Type == TypeDiagonal {
		return 8
	}
	return 4
}

// Colony moves a list of ants over a 2D grid, each turning by the rule entry
// for the state under it and bumping that state.
type Colony struct {
	cfg  core.Config
	grid *core.Grid
	rule rules.AntRule

	ants       []Ant
	initial    []Ant
	redraw     []int
	generation int
}

// New returns an unconfigured colony.
func New() *Colony {
	return &Colony{}
}

// NewWithConfig builds and configures a colony.
func NewWithConfig(cfg core.Config) (*Colony, error) {
	c := New()
	if err := c.Configure(cfg); err != nil {
		return nil, err
	}
	return c, nil
}

// Configure replaces the grid, rule and ants. Initial ants must lie on the
// grid and carry a type between 0 and 3; directions are reduced modulo the
// type's number of facings. On error nothing changes.
func (c *Colony) Configure(cfg core.Config) error {
	if err := core.CheckDimensions(rules.Ant, cfg.Rows, cfg.Columns); err != nil {
		return err
	}
	rule, err := rules.ParseAnt(cfg.Rule)
	if err != nil {
		return err
	}
	grid := core.NewGrid(cfg.Rows, cfg.Columns, cfg.CellSize, cfg.Wrap)
	initial := make([]Ant, 0, len(cfg.Ants))
	for _, spec := range cfg.Ants {
		if !grid.Contains(spec.X, spec.Y) {
			return &core.PlacementError{Agent: spec, Reason: "outside the grid"}
		}
		if spec.Type < 0 || spec.Type > maxType {
			return &core.PlacementError{Agent: spec, Reason: "type must be between 0 and 3"}
		}
		a := Ant{Cell: grid.Index(spec.X, spec.Y), Type: spec.Type}
		a.Direction = wrap(spec.Direction, a.facings())
		initial = append(initial, a)
	}

	cfg.Family = rules.Ant
	c.cfg = cfg
	c.grid = grid
	c.rule = rule
	c.initial = initial
	c.ants = slices.Clone(initial)
	c.redraw = c.redraw[:0]
	c.generation = 0
	return nil
}

// Name returns the simulation identifier.
func (c *Colony) Name() string { return "ant" }

// Family reports the rule family.
func (c *Colony) Family() rules.Family { return rules.Ant }

// Size returns the grid dimensions.
func (c *Colony) Size() core.Size { return core.Size{W: c.cfg.Columns, H: c.cfg.Rows} }

// Cells exposes the current grid values.
func (c *Colony) Cells() []uint8 { return c.grid.Cells() }

// Grid exposes the underlying topology.
func (c *Colony) Grid() *core.Grid { return c.grid }

// Rule returns the parsed turn sequence.
func (c *Colony) Rule() rules.AntRule { return c.rule }

// Generation returns the number of advances since the last reset.
func (c *Colony) Generation() int { return c.generation }

// Ants returns a copy of the current ants in processing order.
func (c *Colony) Ants() []Ant { return slices.Clone(c.ants) }

// AntAt returns the first ant standing on cell i.
func (c *Colony) AntAt(i int) (Ant, bool) {
	for _, a := range c.ants {
		if a.Cell == i {
			return a, true
		}
	}
	return Ant{}, false
}

// AntCells lists the cell under every ant, in processing order.
func (c *Colony) AntCells() []int {
	cells := make([]int, len(c.ants))
	for k, a := range c.ants {
		cells[k] = a.Cell
	}
	return cells
}

// Redraw lists the cells written during the last advance.
func (c *Colony) Redraw() []int { return slices.Clone(c.redraw) }

// Reset clears the grid and puts the configured ants back. A non-zero seed
// fills the grid with random 0/1 values.
func (c *Colony) Reset(seed int64) {
	c.grid.Clear()
	if seed != 0 {
		c.grid.Randomize(seed)
	}
	c.ants = slices.Clone(c.initial)
	c.redraw = c.redraw[:0]
	c.generation = 0
}

// ClearAnts removes every ant.
func (c *Colony) ClearAnts() { c.ants = c.ants[:0] }

// AddAnt places a new ant facing right on cell i. Ants already on i are
// promoted to the next type instead, up to TypeDiagonal. It reports false
// when i is not a live cell.
func (c *Colony) AddAnt(i int) bool {
	if i < 0 || i >= c.grid.Len() {
		return false
	}
	found := false
	for k := range c.ants {
		a := &c.ants[k]
		if a.Cell != i {
			continue
		}
		found = true
		if a.Type == maxType {
			continue
		}
		a.Type++
		if a.Type == TypeDiagonal {
			a.Direction *= 2
		}
	}
	if !found {
		c.ants = append(c.ants, Ant{Cell: i})
	}
	return true
}

// RemoveAnt demotes every ant on cell i by one type; an ant already at type
// 0 is removed. It reports whether any ant was on i.
func (c *Colony) RemoveAnt(i int) bool {
	found := false
	kept := c.ants[:0]
	for _, a := range c.ants {
		if a.Cell != i {
			kept = append(kept, a)
			continue
		}
		found = true
		if a.Type == 0 {
			continue
		}
		if a.Type == TypeDiagonal {
			a.Direction /= 2
		}
		a.Type--
		kept = append(kept, a)
	}
	c.ants = kept
	return found
}

// Step moves every ant once, in list order. An ant whose cell state has no
// rule entry stays idle; an ant facing the edge of a bounded grid turns and
// writes but does not move.
func (c *Colony) Step() {
	g := c.grid
	copy(g.Prev(), g.Cells())
	c.redraw = c.redraw[:0]
	n := c.rule.States()

	for k := range c.ants {
		a := &c.ants[k]
		j := int(g.State(a.Cell))
		if j >= n {
			continue
		}
		c.redraw = append(c.redraw, a.Cell)

		if a.Type == TypeReverse {
			g.Set(a.Cell, uint8(wrap(j-1, n)))
		} else {
			g.Set(a.Cell, uint8(wrap(j+1, n)))
		}

		left := c.rule[j] == rules.TurnLeft
		if a.Type == TypeMirrored {
			left = !left
		}
		if left {
			a.Direction = wrap(a.Direction+1, a.facings())
		} else {
			a.Direction = wrap(a.Direction-1, a.facings())
		}

		if dest := c.destination(*a); !g.IsBoundary(dest) {
			a.Cell = dest
		}
	}
	c.generation++
}

// destination resolves the cell one step ahead. Diagonal facings chain two
// cardinal links, so a bounded edge on either hop yields the sentinel.
func (c *Colony) destination(a Ant) int {
	g := c.grid
	if a.Type != TypeDiagonal {
		return g.Neighbor(a.Cell, core.Dir(a.Direction))
	}
	switch a.Direction {
	case 1:
		return g.Diagonal(a.Cell, core.Right, core.Up)
	case 3:
		return g.Diagonal(a.Cell, core.Left, core.Up)
	case 5:
		return g.Diagonal(a.Cell, core.Left, core.Down)
	case 7:
		return g.Diagonal(a.Cell, core.Down, core.Right)
	default:
		return g.Neighbor(a.Cell, core.Dir(a.Direction/2))
	}
}

// Parameters describes the active configuration.
func (c *Colony) Parameters() core.ParameterSnapshot {
	return c.cfg.Parameters().With(core.ParameterGroup{
		Name: "Run",
		Params: []core.Parameter{
			core.IntParam("generation", "Generation", c.generation),
			core.IntParam("ants", "Ants", len(c.ants)),
			core.IntParam("states", "States", c.rule.States()),
		},
	})
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}

func init() {
	core.Register(rules.Ant, func() core.Sim { return New() })
}
