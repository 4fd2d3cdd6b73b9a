package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"casim/internal/app"
	"casim/internal/core"
	"casim/internal/render"
	"casim/internal/rules"
	_ "casim/internal/sims/ant"
	_ "casim/internal/sims/elementary"
	_ "casim/internal/sims/totalistic"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	steps := flag.Int("steps", 100, "number of advances to run")
	every := flag.Int("every", 0, "print the grid every n advances (0 prints only the first and last)")
	pace := flag.Bool("pace", false, "advance at the configured interval instead of as fast as possible")
	validate := flag.Bool("validate", false, "check the rule for the selected family and exit")
	describe := flag.Bool("describe", false, "print the resolved parameters before running")
	listPresets := flag.Bool("presets", false, "list rule presets and exit")
	output := flag.String("out", "", "write snapshots to this file rather than stdout")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("casim: ")

	if *listPresets {
		for _, p := range rules.Presets() {
			fmt.Printf("%-14s %-11s %s\n", p.Name, p.Family, p.Rule)
		}
		return
	}

	cfg, err := opts.Config()
	if err != nil {
		log.Fatal(err)
	}

	if *validate {
		if err := rules.Check(cfg.Rule, cfg.Family); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("%s rule %q ok\n", cfg.Family, cfg.Rule)
		return
	}

	sim, err := core.New(cfg)
	if err != nil {
		log.Fatalf("configure: %v", err)
	}
	sim.Reset(cfg.Seed)

	var out io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("open output: %v", err)
		}
		defer f.Close()
		out = f
	}

	if *describe {
		if p, ok := sim.(core.ParameterProvider); ok {
			if err := render.WriteParameters(os.Stdout, p.Parameters()); err != nil {
				log.Fatal(err)
			}
		}
	}

	runner := &app.Runner{Sim: sim, Out: out, Every: *every}
	if *pace {
		runner.Timer = core.NewFixedStep(cfg.Interval())
	}
	log.Printf("%s %dx%d wrap=%v rule %q seed %d, %d steps", sim.Name(), cfg.Columns, cfg.Rows, cfg.Wrap, cfg.Rule, cfg.Seed, *steps)
	if err := runner.Run(*steps); err != nil {
		log.Fatalf("write: %v", err)
	}
}
