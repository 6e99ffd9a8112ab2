package primelife

import "stepca/internal/core"

// offsets lists the Moore neighbourhood as (dx, dy) in NW, N, NE, W, E, SW,
// S, SE order, where dx moves between rows and dy between columns.
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the eight toroidally wrapped coordinates around (x, y).
// On grids narrower than three cells some coordinates repeat.
func Neighbors(g *core.Grid, x, y int) [8]core.Coord {
	var out [8]core.Coord
	for i, off := range offsets {
		nx, ny := g.Wrap(x+off[0], y+off[1])
		out[i] = core.Coord{X: nx, Y: ny}
	}
	return out
}

// CountAlive returns how many of the eight neighbours of (x, y) are alive.
func CountAlive(g *core.Grid, x, y int) int {
	n := 0
	for _, c := range Neighbors(g, x, y) {
		if g.At(c.X, c.Y) == core.Alive {
			n++
		}
	}
	return n
}
