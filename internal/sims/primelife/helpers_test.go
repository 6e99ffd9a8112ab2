package primelife

import (
	"testing"

	"stepca/internal/core"
)

// parseRows builds a grid from '+'/'-' rows.
func parseRows(t *testing.T, rows ...string) *core.Grid {
	t.Helper()
	g := core.NewGrid(len(rows), len(rows[0]))
	for x, row := range rows {
		if len(row) != g.Cols {
			t.Fatalf("row %d has %d cells, expected %d", x, len(row), g.Cols)
		}
		for y, ch := range row {
			if ch == '+' {
				g.Set(x, y, core.Alive)
			}
		}
	}
	return g
}
