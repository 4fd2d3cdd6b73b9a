package core

import (
	"fmt"

	"casim/internal/rules"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract every automaton family implements.
//
// Configure replaces grid, rules and agents atomically; on error the previous
// configuration is left untouched. Step advances exactly one generation and
// cannot fail.
type Sim interface {
	Name() string
	Family() rules.Family
	Size() Size
	Configure(cfg Config) error
	Reset(seed int64)
	Step()
	Cells() []uint8
	Grid() *Grid
	Generation() int
}

// Framer is implemented by sims whose display buffer differs from Cells, such
// as the 1D history strip.
type Framer interface {
	Frame() []uint8
	FrameSize() Size
}

// Factory constructs an unconfigured Sim.
type Factory func() Sim

var sims = map[rules.Family]Factory{}

// Register adds a simulation factory for the provided family.
func Register(f rules.Family, fn Factory) {
	if fn == nil {
		return
	}
	sims[f] = fn
}

// Sims exposes the registry of available simulation factories.
func Sims() map[rules.Family]Factory {
	return sims
}

// New builds and configures a simulation for cfg.Family.
func New(cfg Config) (Sim, error) {
	fn, ok := sims[cfg.Family]
	if !ok {
		return nil, fmt.Errorf("core: no simulation registered for %s", cfg.Family)
	}
	sim := fn()
	if err := sim.Configure(cfg); err != nil {
		return nil, err
	}
	return sim, nil
}

// Run advances sim n times.
func Run(sim Sim, n int) {
	for i := 0; i < n; i++ {
		sim.Step()
	}
}
