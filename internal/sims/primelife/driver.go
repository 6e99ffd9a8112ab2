package primelife

import (
	"context"
	"fmt"

	"stepca/internal/core"
)

// Observer is notified after each completed generation with its 1-based index
// and the freshly assembled grid. Observers must not mutate the grid.
type Observer func(generation int, g *core.Grid)

// Run applies Step cfg.Generations times, feeding each result into the next
// step, and returns the final grid. The seed grid is never modified. With zero
// generations Run returns a copy of seed.
func Run(ctx context.Context, seed *core.Grid, cfg Config, observe Observer) (*core.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkShape(seed); err != nil {
		return nil, err
	}
	cur := seed
	for gen := 1; gen <= cfg.Generations; gen++ {
		next, err := Step(ctx, cur, cfg.Workers)
		if err != nil {
			return nil, fmt.Errorf("generation %d: %w", gen, err)
		}
		cur = next
		if observe != nil {
			observe(gen, cur)
		}
	}
	if cur == seed {
		return seed.Clone(), nil
	}
	return cur, nil
}
