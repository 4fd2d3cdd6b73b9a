package ant

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"casim/internal/core"
	"casim/internal/rules"
)

func newColony(t *testing.T, rows, cols int, wrap bool, rule string, ants ...core.AntSpec) *Colony {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Family = rules.Ant
	cfg.Rows = rows
	cfg.Columns = cols
	cfg.Wrap = wrap
	cfg.Rule = rule
	cfg.Ants = ants
	c, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("configure: %v", err)
	}
	return c
}

func TestSingleStepPerType(t *testing.T) {
	cases := []struct {
		name      string
		typ       int
		wantState uint8
		wantDir   int
		wantX     int
		wantY     int
	}{
		{"clockwise", TypeClockwise, 1, 3, 2, 3},
		{"reverse", TypeReverse, 1, 3, 2, 3},
		{"mirrored", TypeMirrored, 1, 1, 2, 1},
		{"diagonal", TypeDiagonal, 1, 7, 3, 3},
	}
	for _, tc := range cases {
		c := newColony(t, 5, 5, true, rules.LangtonsAnt, core.AntSpec{X: 2, Y: 2, Type: tc.typ})
		g := c.Grid()
		start := g.Index(2, 2)
		c.Step()

		if got := c.Cells()[start]; got != tc.wantState {
			t.Fatalf("%s: state = %d, want %d", tc.name, got, tc.wantState)
		}
		a := c.Ants()[0]
		if a.Direction != tc.wantDir {
			t.Fatalf("%s: direction = %d, want %d", tc.name, a.Direction, tc.wantDir)
		}
		if x, y := g.Coord(a.Cell); x != tc.wantX || y != tc.wantY {
			t.Fatalf("%s: moved to (%d,%d), want (%d,%d)", tc.name, x, y, tc.wantX, tc.wantY)
		}
		if !slices.Equal(c.Redraw(), []int{start}) {
			t.Fatalf("%s: redraw = %v", tc.name, c.Redraw())
		}
	}
}

func TestReverseAntCountsDown(t *testing.T) {
	c := newColony(t, 4, 4, true, "rlr", core.AntSpec{X: 1, Y: 1, Type: TypeReverse})
	c.Step()
	if got := c.Cells()[c.Grid().Index(1, 1)]; got != 2 {
		t.Fatalf("reverse ant should wrap 0 to the last state, got %d", got)
	}

	fwd := newColony(t, 4, 4, true, "rlr", core.AntSpec{X: 1, Y: 1})
	fwd.Grid().Set(fwd.Grid().Index(1, 1), 2)
	fwd.Step()
	if got := fwd.Cells()[fwd.Grid().Index(1, 1)]; got != 0 {
		t.Fatalf("forward ant should wrap the last state to 0, got %d", got)
	}
}

func TestLongRuleCyclesThroughByteStates(t *testing.T) {
	rule := strings.Repeat("r", 300)
	rev := newColony(t, 4, 4, true, rule, core.AntSpec{X: 1, Y: 1, Type: TypeReverse})
	rev.Step()
	if got := rev.Cells()[rev.Grid().Index(1, 1)]; got != 255 {
		t.Fatalf("reverse ant should wrap 0 to 255, got %d", got)
	}

	fwd := newColony(t, 4, 4, true, rule, core.AntSpec{X: 1, Y: 1})
	fwd.Grid().Set(fwd.Grid().Index(1, 1), 255)
	fwd.Step()
	if got := fwd.Cells()[fwd.Grid().Index(1, 1)]; got != 0 {
		t.Fatalf("forward ant should wrap 255 to 0, got %d", got)
	}
	if v, ok := fwd.Parameters().Lookup("states"); !ok || v != "256" {
		t.Fatalf("states parameter = %q", v)
	}
}

func TestRedrawReturnsCopy(t *testing.T) {
	c := newColony(t, 6, 6, true, rules.LangtonsAnt, core.AntSpec{X: 2, Y: 2})
	c.Step()
	first := c.Redraw()
	want := slices.Clone(first)
	first[0] = -1
	if !slices.Equal(c.Redraw(), want) {
		t.Fatalf("redraw changed through the returned slice: %v", c.Redraw())
	}
	c.Step()
	if first[0] != -1 {
		t.Fatal("advance must not write into a previously returned slice")
	}
}

func TestDiagonalAntCompoundHops(t *testing.T) {
	// With rule "l" every step turns left by one eighth and increments.
	c := newColony(t, 9, 9, true, "l", core.AntSpec{X: 4, Y: 4, Type: TypeDiagonal})
	g := c.Grid()
	want := [][2]int{{5, 3}, {5, 2}, {4, 1}, {3, 1}, {2, 2}, {2, 3}, {3, 4}, {4, 4}}
	for step, xy := range want {
		c.Step()
		a := c.Ants()[0]
		if x, y := g.Coord(a.Cell); x != xy[0] || y != xy[1] {
			t.Fatalf("step %d: ant at (%d,%d), want (%d,%d)", step, x, y, xy[0], xy[1])
		}
	}
}

func TestIdleWhenStateHasNoRuleEntry(t *testing.T) {
	c := newColony(t, 4, 4, true, rules.LangtonsAnt, core.AntSpec{X: 1, Y: 1, Direction: 2})
	cell := c.Grid().Index(1, 1)
	c.Grid().Set(cell, 5)
	c.Step()

	a, ok := c.AntAt(cell)
	if !ok || a.Direction != 2 {
		t.Fatalf("ant should stay idle, got %+v ok=%v", a, ok)
	}
	if c.Cells()[cell] != 5 || len(c.Redraw()) != 0 {
		t.Fatal("idle ant must not write")
	}
	if c.Generation() != 1 {
		t.Fatalf("generation = %d", c.Generation())
	}
}

func TestBoundedGridBlocksMoves(t *testing.T) {
	c := newColony(t, 3, 3, false, rules.LangtonsAnt, core.AntSpec{X: 1, Y: 2})
	g := c.Grid()
	start := g.Index(1, 2)
	c.Step()

	a := c.Ants()[0]
	if a.Cell != start {
		t.Fatalf("ant should be blocked by the edge, moved to %d", a.Cell)
	}
	if a.Direction != 3 || c.Cells()[start] != 1 {
		t.Fatalf("blocked ant should still turn and write: %+v state %d", a, c.Cells()[start])
	}

	diag := newColony(t, 3, 3, false, "r", core.AntSpec{X: 2, Y: 1, Type: TypeDiagonal})
	diag.Step()
	if x, y := diag.Grid().Coord(diag.Ants()[0].Cell); x != 2 || y != 1 {
		t.Fatalf("diagonal hop across the edge should be blocked, ant at (%d,%d)", x, y)
	}
}

func TestAntsRunInListOrder(t *testing.T) {
	c := newColony(t, 5, 5, true, rules.LangtonsAnt,
		core.AntSpec{X: 2, Y: 2},
		core.AntSpec{X: 2, Y: 2},
	)
	g := c.Grid()
	c.Step()

	ants := c.Ants()
	// The second ant reads the 1 written by the first and turns left.
	if ants[0].Direction != 3 || ants[1].Direction != 1 {
		t.Fatalf("directions = %d, %d", ants[0].Direction, ants[1].Direction)
	}
	if got := c.Cells()[g.Index(2, 2)]; got != 0 {
		t.Fatalf("cell visited twice should cycle back to 0, got %d", got)
	}
	if x, y := g.Coord(ants[1].Cell); x != 2 || y != 1 {
		t.Fatalf("second ant at (%d,%d), want (2,1)", x, y)
	}
}

func TestAddAndRemoveAnt(t *testing.T) {
	c := newColony(t, 6, 6, true, rules.LangtonsAnt, core.AntSpec{X: 1, Y: 1, Direction: 1, Type: TypeMirrored})
	g := c.Grid()
	cell := g.Index(1, 1)

	c.AddAnt(cell)
	if a, _ := c.AntAt(cell); a.Type != TypeDiagonal || a.Direction != 2 {
		t.Fatalf("promotion to diagonal should double the facing: %+v", a)
	}
	c.AddAnt(cell)
	if a, _ := c.AntAt(cell); a.Type != TypeDiagonal {
		t.Fatalf("type should cap at %d, got %d", TypeDiagonal, a.Type)
	}
	if len(c.Ants()) != 1 {
		t.Fatalf("promotion must not add ants, have %d", len(c.Ants()))
	}

	if !c.RemoveAnt(cell) {
		t.Fatal("RemoveAnt should find the ant")
	}
	if a, _ := c.AntAt(cell); a.Type != TypeMirrored || a.Direction != 1 {
		t.Fatalf("demotion should halve the facing: %+v", a)
	}
	for i := 0; i < 3; i++ {
		c.RemoveAnt(cell)
	}
	if _, ok := c.AntAt(cell); ok {
		t.Fatal("ant should be gone after demotion past type 0")
	}
	if c.RemoveAnt(cell) {
		t.Fatal("RemoveAnt on an empty cell should report false")
	}

	other := g.Index(4, 4)
	if !c.AddAnt(other) || len(c.Ants()) != 1 {
		t.Fatal("AddAnt on an empty cell should create an ant")
	}
	if a, _ := c.AntAt(other); a != (Ant{Cell: other}) {
		t.Fatalf("new ant = %+v", a)
	}
	if c.AddAnt(g.Sentinel()) || c.AddAnt(-1) {
		t.Fatal("ants cannot be placed off the grid")
	}
	c.ClearAnts()
	c.Step()
	if len(c.Ants()) != 0 || len(c.Redraw()) != 0 {
		t.Fatal("an empty colony should advance without writes")
	}
}

func TestResetRestoresInitialAnts(t *testing.T) {
	c := newColony(t, 8, 8, true, rules.LangtonsAnt, core.AntSpec{X: 3, Y: 3, Direction: 5})
	core.Run(c, 25)
	c.AddAnt(0)
	c.Reset(0)
	want := []Ant{{Cell: c.Grid().Index(3, 3), Direction: 1}}
	if !slices.Equal(c.Ants(), want) {
		t.Fatalf("ants after reset = %+v, want %+v", c.Ants(), want)
	}
	if !slices.Equal(c.Cells(), make([]uint8, 64)) || c.Generation() != 0 {
		t.Fatal("reset should clear the grid")
	}
}

// Langton's ant settles into a highway after roughly 10000 steps: a
// 104-step cycle that shifts the ant two cells along each axis.
func TestLangtonHighway(t *testing.T) {
	if testing.Short() {
		t.Skip("long run")
	}
	const size = 200
	c := newColony(t, size, size, false, rules.LangtonsAnt, core.AntSpec{X: size / 2, Y: size / 2})
	g := c.Grid()
	core.Run(c, 11000)

	var deltas [][2]int
	x0, y0 := g.Coord(c.Ants()[0].Cell)
	for cycle := 0; cycle < 4; cycle++ {
		core.Run(c, 104)
		x, y := g.Coord(c.Ants()[0].Cell)
		deltas = append(deltas, [2]int{x - x0, y - y0})
		x0, y0 = x, y
	}
	for _, d := range deltas {
		if d != deltas[0] {
			t.Fatalf("highway displacement not periodic: %v", deltas)
		}
	}
	if abs(deltas[0][0]) != 2 || abs(deltas[0][1]) != 2 {
		t.Fatalf("highway should move two cells diagonally per cycle, got %v", deltas[0])
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestDeterministicRuns(t *testing.T) {
	ants := []core.AntSpec{{X: 3, Y: 3}, {X: 10, Y: 4, Direction: 2, Type: 1}, {X: 7, Y: 12, Direction: 5, Type: 3}}
	a := newColony(t, 16, 16, true, "rlllrr", ants...)
	b := newColony(t, 16, 16, true, "rlllrr", ants...)
	a.Reset(3)
	b.Reset(3)
	core.Run(a, 500)
	core.Run(b, 500)
	if !slices.Equal(a.Cells(), b.Cells()) || !slices.Equal(a.Ants(), b.Ants()) {
		t.Fatal("identical configurations diverged")
	}
}

func TestConfigureRejectsBadInput(t *testing.T) {
	c := newColony(t, 5, 5, true, rules.LangtonsAnt, core.AntSpec{X: 1, Y: 1})

	cfg := core.DefaultConfig()
	cfg.Family = rules.Ant
	cfg.Rule = "rl"
	cfg.Ants = []core.AntSpec{{X: 10, Y: 1}}
	if err := c.Configure(cfg); !errors.Is(err, core.ErrPlacement) {
		t.Fatalf("expected placement error, got %v", err)
	}
	cfg.Ants = []core.AntSpec{{X: 1, Y: 1, Type: 4}}
	if err := c.Configure(cfg); !errors.Is(err, core.ErrPlacement) {
		t.Fatalf("expected placement error for type 4, got %v", err)
	}
	cfg.Ants = nil
	cfg.Rule = "rlx"
	var se *rules.SyntaxError
	if err := c.Configure(cfg); !errors.As(err, &se) || se.Clause != 2 {
		t.Fatalf("expected bad symbol at 2, got %v", err)
	}
	cfg.Rule = "rl"
	cfg.Columns = 1
	if err := c.Configure(cfg); !errors.Is(err, core.ErrDimension) {
		t.Fatalf("expected dimension error, got %v", err)
	}
	if len(c.Ants()) != 1 || c.Size() != (core.Size{W: 5, H: 5}) {
		t.Fatal("failed Configure must keep the previous colony")
	}
}

func TestConfigureNormalizesDirection(t *testing.T) {
	c := newColony(t, 5, 5, true, rules.LangtonsAnt,
		core.AntSpec{X: 0, Y: 0, Direction: -1},
		core.AntSpec{X: 1, Y: 0, Direction: 9, Type: TypeDiagonal},
	)
	ants := c.Ants()
	if ants[0].Direction != 3 || ants[1].Direction != 1 {
		t.Fatalf("directions = %d, %d", ants[0].Direction, ants[1].Direction)
	}
}

func TestValidateAgreesWithConfigure(t *testing.T) {
	corpus := []string{
		"", "r", "rl", "RL", "lrx", "l r", "rl ", "llrr",
		strings.Repeat("l", rules.ReachableAntStates),
		strings.Repeat("r", rules.ReachableAntStates+1),
		strings.Repeat("lr", 1000),
	}
	for _, rule := range corpus {
		cfg := core.DefaultConfig()
		cfg.Family = rules.Ant
		cfg.Rule = rule
		err := New().Configure(cfg)
		if rules.Validate(rule, rules.Ant) != (err == nil) {
			t.Fatalf("%q: Validate disagrees with Configure (%v)", rule, err)
		}
	}
}
