//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"casim/internal/app"
	"casim/internal/core"
	_ "casim/internal/sims/ant"
	_ "casim/internal/sims/elementary"
	_ "casim/internal/sims/totalistic"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	cfg, err := opts.Config()
	if err != nil {
		log.Fatal(err)
	}
	sim, err := core.New(cfg)
	if err != nil {
		log.Fatalf("configure: %v", err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("casim - " + sim.Name() + " " + cfg.Rule)
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
