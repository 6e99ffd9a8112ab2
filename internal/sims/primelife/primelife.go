package primelife

import (
	"context"

	"stepca/internal/core"
	pcore "stepca/pkg/core"
)

// reseedDensity is the alive fraction used when Reset draws a random board.
const reseedDensity = 0.35

// Sim wraps the step engine behind core.Sim so the viewer and terminal
// player can drive it one generation at a time.
type Sim struct {
	cfg     Config
	initial *core.Grid
	cur     *core.Grid
	gen     int
}

// New returns a Sim starting from a copy of seed.
func New(seed *core.Grid, cfg Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkShape(seed); err != nil {
		return nil, err
	}
	return &Sim{cfg: cfg, initial: seed.Clone(), cur: seed.Clone()}, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "primelife" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return s.cur.Size() }

// Cells exposes the current generation's cells.
func (s *Sim) Cells() []core.State { return s.cur.Cells() }

// Grid returns the current generation.
func (s *Sim) Grid() *core.Grid { return s.cur }

// Generation reports how many steps have been applied since the last reset.
func (s *Sim) Generation() int { return s.gen }

// Alive counts the populated cells of the current generation.
func (s *Sim) Alive() int { return s.cur.Alive() }

// Workers reports the configured worker count.
func (s *Sim) Workers() int { return s.cfg.Workers }

// Reset restores the loaded grid when seed is 0, otherwise it fills the board
// randomly from seed.
func (s *Sim) Reset(seed int64) {
	s.gen = 0
	if seed == 0 {
		s.cur = s.initial.Clone()
		return
	}
	s.cur = pcore.RandomGrid(s.initial.Rows, s.initial.Cols, seed, reseedDensity)
}

// Step advances one generation. On error the current generation is kept.
func (s *Sim) Step(ctx context.Context) error {
	next, err := Step(ctx, s.cur, s.cfg.Workers)
	if err != nil {
		return err
	}
	s.cur = next
	s.gen++
	return nil
}

var _ core.Sim = (*Sim)(nil)
