package primelife

import (
	"testing"

	"stepca/internal/core"
)

func TestNeighborsOrderWrapsCorner(t *testing.T) {
	g := core.NewGrid(4, 5)
	got := Neighbors(g, 0, 0)
	want := [8]core.Coord{
		{X: 3, Y: 4}, {X: 3, Y: 0}, {X: 3, Y: 1},
		{X: 0, Y: 4}, {X: 0, Y: 1},
		{X: 1, Y: 4}, {X: 1, Y: 0}, {X: 1, Y: 1},
	}
	if got != want {
		t.Fatalf("Neighbors(0,0) = %v, expected %v", got, want)
	}
}

func TestCountAliveSeesOppositeEdges(t *testing.T) {
	g := parseRows(t,
		"+---+",
		"-----",
		"-----",
		"+---+",
	)
	// (0,0) touches (3,4), (3,0), (0,4) through the wrap; it does not count itself.
	if n := CountAlive(g, 0, 0); n != 3 {
		t.Fatalf("CountAlive(0,0) = %d, expected 3", n)
	}
	if n := CountAlive(g, 3, 4); n != 3 {
		t.Fatalf("CountAlive(3,4) = %d, expected 3", n)
	}
	if n := CountAlive(g, 1, 2); n != 0 {
		t.Fatalf("CountAlive(1,2) = %d, expected 0", n)
	}
}

func TestCountAliveFullNeighbourhood(t *testing.T) {
	g := parseRows(t,
		"+++",
		"+-+",
		"+++",
	)
	if n := CountAlive(g, 1, 1); n != 8 {
		t.Fatalf("CountAlive(1,1) = %d, expected 8", n)
	}
}

func TestCountAliveTinyGridRepeatsNeighbours(t *testing.T) {
	g := parseRows(t,
		"+-",
		"-+",
	)
	// On a 2x2 torus the diagonal cell is reached through four offsets.
	if n := CountAlive(g, 0, 0); n != 4 {
		t.Fatalf("CountAlive(0,0) = %d, expected 4", n)
	}
}
