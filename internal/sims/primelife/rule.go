package primelife

import "stepca/internal/core"

// Alive cells survive on an even count of 2, 4 or 6 neighbours; dead cells
// come alive on a prime count of 2, 3, 5 or 7.
var (
	survive = [9]bool{2: true, 4: true, 6: true}
	birth   = [9]bool{2: true, 3: true, 5: true, 7: true}
)

// Next maps a cell's current state and alive-neighbour count to its state in
// the following generation. Counts outside 0..8 yield Dead.
func Next(s core.State, neighbors int) core.State {
	if neighbors < 0 || neighbors > 8 {
		return core.Dead
	}
	if s == core.Alive && survive[neighbors] {
		return core.Alive
	}
	if s == core.Dead && birth[neighbors] {
		return core.Alive
	}
	return core.Dead
}
