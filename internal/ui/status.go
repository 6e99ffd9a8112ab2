package ui

import (
	"fmt"
	"strings"

	"stepca/internal/core"
)

type workerCounter interface {
	Workers() int
}

type aliveCounter interface {
	Alive() int
}

// StatusLine summarises the sim for the HUD and the terminal player.
func StatusLine(sim core.Sim, paused bool) string {
	parts := []string{
		sim.Name(),
		fmt.Sprintf("gen %d", sim.Generation()),
	}
	if ac, ok := sim.(aliveCounter); ok {
		parts = append(parts, fmt.Sprintf("alive %d", ac.Alive()))
	}
	if wc, ok := sim.(workerCounter); ok {
		parts = append(parts, fmt.Sprintf("workers %d", wc.Workers()))
	}
	if paused {
		parts = append(parts, "paused")
	}
	return strings.Join(parts, "  ")
}
