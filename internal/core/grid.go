package core

import "fmt"

// State is the value held by a single cell.
type State uint8

const (
	// Dead is the zero value so freshly allocated grids start empty.
	Dead State = iota
	// Alive marks a populated cell.
	Alive
)

// Valid reports whether s is one of the two known states.
func (s State) Valid() bool { return s == Dead || s == Alive }

func (s State) String() string {
	switch s {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Coord addresses a cell by row (X) and column (Y).
type Coord struct {
	X, Y int
}

// Grid stores a Rows x Cols board of cell states in row-major order.
type Grid struct {
	Rows, Cols int
	cells      []State
}

// NewGrid allocates an all-dead grid with the given dimensions. Non-positive
// dimensions are clamped to 1.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, cells: make([]State, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []State { return g.cells }

// Size reports the grid dimensions as width (columns) by height (rows).
func (g *Grid) Size() Size { return Size{W: g.Cols, H: g.Rows} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return x*g.Cols + y }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.Rows + g.Rows) % g.Rows
	y = (y%g.Cols + g.Cols) % g.Cols
	return x, y
}

// At returns the state at (x, y). Coordinates must be in range.
func (g *Grid) At(x, y int) State { return g.cells[g.Index(x, y)] }

// Set writes the state at (x, y). Coordinates must be in range.
func (g *Grid) Set(x, y int, s State) { g.cells[g.Index(x, y)] = s }

// Alive counts the populated cells.
func (g *Grid) Alive() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{Rows: g.Rows, Cols: g.Cols, cells: make([]State, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Rows != o.Rows || g.Cols != o.Cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
