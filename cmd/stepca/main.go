package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"stepca/internal/app"
	"stepca/internal/core"
	"stepca/internal/sims/primelife"
	"stepca/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("stepca: ")

	cfg, err := app.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, os.Stdout)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

// run loads the input, simulates, and writes the result. Nothing is written to
// cfg.Output unless every generation succeeded.
func run(ctx context.Context, cfg *app.Config, stdout io.Writer) error {
	codec := cfg.Codec()
	seed, err := codec.LoadFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	start := time.Now()
	var final *core.Grid
	if cfg.Watch {
		final, err = watch(ctx, seed, cfg)
	} else {
		final, err = primelife.Run(ctx, seed, cfg.Engine(), nil)
	}
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	elapsed := time.Since(start)

	if cfg.Print {
		if err := codec.Pretty(stdout, final); err != nil {
			return err
		}
	}
	if err := codec.SaveFile(cfg.Output, final); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if !cfg.Quiet {
		log.Printf("%d generations of %dx%d grid on %d workers in %s, %d alive",
			cfg.Generations, seed.Rows, seed.Cols, cfg.Workers, elapsed.Round(time.Millisecond), final.Alive())
	}
	return nil
}

func watch(ctx context.Context, seed *core.Grid, cfg *app.Config) (*core.Grid, error) {
	sim, err := primelife.New(seed, cfg.Engine())
	if err != nil {
		return nil, err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	defer screen.Fini()

	if err := term.NewPlayer(screen, cfg.Codec(), cfg.TPS).Play(ctx, sim, cfg.Generations); err != nil {
		return nil, err
	}
	return sim.Grid(), nil
}
