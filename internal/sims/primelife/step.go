package primelife

import (
	"context"
	"errors"
	"fmt"

	"stepca/internal/core"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrWorkers reports a worker count below one.
	ErrWorkers = errors.New("worker count must be at least 1")
	// ErrShape reports a grid whose backing storage does not match its dimensions.
	ErrShape = errors.New("grid is not a non-empty rectangle")
	// ErrCorruptCell reports a cell holding neither Alive nor Dead.
	ErrCorruptCell = errors.New("corrupt cell state")
	// ErrWorkerPanic reports a worker that panicked mid-step.
	ErrWorkerPanic = errors.New("worker panicked")
)

// cancelCheckEvery bounds how many cells a worker processes between context checks.
const cancelCheckEvery = 1024

// Update is one worker result: the next state for a single coordinate.
type Update struct {
	core.Coord
	State core.State
}

// cellKernel computes the next state of one coordinate against prev.
var cellKernel = func(prev *core.Grid, c core.Coord) (core.State, error) {
	s := prev.At(c.X, c.Y)
	if !s.Valid() {
		return core.Dead, fmt.Errorf("cell (%d,%d) holds %v: %w", c.X, c.Y, s, ErrCorruptCell)
	}
	return Next(s, CountAlive(prev, c.X, c.Y)), nil
}

// Step advances prev by one generation using up to workers goroutines and
// returns a freshly allocated grid. Any worker count of at least one is
// valid. prev is only read. If any worker fails or ctx is cancelled, Step
// returns the error and no grid.
func Step(ctx context.Context, prev *core.Grid, workers int) (*core.Grid, error) {
	if err := checkShape(prev); err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, fmt.Errorf("step with %d workers: %w", workers, ErrWorkers)
	}
	// Workers beyond the cell count would only receive empty partitions.
	parts, err := Partition(prev.Rows, prev.Cols, min(workers, prev.Rows*prev.Cols))
	if err != nil {
		return nil, err
	}

	results := make([][]Update, len(parts))
	g, gctx := errgroup.WithContext(ctx)
	for i, part := range parts {
		if len(part) == 0 {
			continue
		}
		g.Go(guard(i, func() error {
			out, err := computePartition(gctx, prev, part)
			if err != nil {
				return fmt.Errorf("worker %d: %w", i, err)
			}
			results[i] = out
			return nil
		}))
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	next := core.NewGrid(prev.Rows, prev.Cols)
	cells := next.Cells()
	for _, out := range results {
		for _, u := range out {
			cells[next.Index(u.X, u.Y)] = u.State
		}
	}
	return next, nil
}

func computePartition(ctx context.Context, prev *core.Grid, part []core.Coord) ([]Update, error) {
	out := make([]Update, len(part))
	for i, c := range part {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		s, err := cellKernel(prev, c)
		if err != nil {
			return nil, err
		}
		out[i] = Update{Coord: c, State: s}
	}
	return out, nil
}

// guard converts a panic inside fn into ErrWorkerPanic so the errgroup barrier
// always releases.
func guard(worker int, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("worker %d: %v: %w", worker, r, ErrWorkerPanic)
			}
		}()
		return fn()
	}
}

func checkShape(g *core.Grid) error {
	if g == nil || g.Rows <= 0 || g.Cols <= 0 || len(g.Cells()) != g.Rows*g.Cols {
		return ErrShape
	}
	return nil
}
