//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"stepca/internal/app"
	"stepca/internal/core"
	"stepca/internal/sims/primelife"
	pcore "stepca/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewViewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	var seed *core.Grid
	if cfg.Input != "" {
		g, err := cfg.Codec().LoadFile(cfg.Input)
		if err != nil {
			log.Fatal(err)
		}
		seed = g
	} else {
		seed = pcore.RandomGrid(cfg.Rows, cfg.Cols, cfg.Seed, 0.35)
	}

	sim, err := primelife.New(seed, primelife.Config{Workers: cfg.Workers})
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale)
	size := sim.Size()

	ebiten.SetWindowTitle("stepca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
