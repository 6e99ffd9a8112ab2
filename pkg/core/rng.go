package core

import (
	"math/rand/v2"

	grid "stepca/internal/core"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBinary populates cells with alive/dead states, each cell alive with
// probability density (clamped to [0, 1]).
func (r *RNG) FillBinary(cells []grid.State, density float64) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	for i := range cells {
		cells[i] = grid.Dead
		if r.r.Float64() < density {
			cells[i] = grid.Alive
		}
	}
}

// RandomGrid returns a rows x cols grid seeded deterministically from seed.
func RandomGrid(rows, cols int, seed int64, density float64) *grid.Grid {
	g := grid.NewGrid(rows, cols)
	NewRNG(seed).FillBinary(g.Cells(), density)
	return g
}
