package app

import (
	"fmt"
	"io"

	"casim/internal/core"
	"casim/internal/render"
)

// Runner drives a simulation without a window, printing snapshots as text.
type Runner struct {
	Sim   core.Sim
	Out   io.Writer
	Every int
	// Timer paces advances when set.
	Timer *core.FixedStep
}

// Run advances the simulation steps times. With Every > 0 a snapshot is
// printed after each Every-th advance; the final state is always printed.
func (r *Runner) Run(steps int) error {
	if err := r.snapshot(); err != nil {
		return err
	}
	for i := 1; i <= steps; i++ {
		if r.Timer != nil {
			r.Timer.Wait()
		}
		r.Sim.Step()
		if r.Every > 0 && i%r.Every == 0 && i != steps {
			if err := r.snapshot(); err != nil {
				return err
			}
		}
	}
	if steps > 0 {
		return r.snapshot()
	}
	return nil
}

func (r *Runner) snapshot() error {
	if _, err := fmt.Fprintf(r.Out, "generation %d\n", r.Sim.Generation()); err != nil {
		return err
	}
	return render.WriteText(r.Out, r.Sim)
}
