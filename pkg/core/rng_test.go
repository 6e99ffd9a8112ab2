package core

import "testing"

func TestRandomGridDeterministic(t *testing.T) {
	a := RandomGrid(12, 9, 42, 0.4)
	b := RandomGrid(12, 9, 42, 0.4)
	if !a.Equal(b) {
		t.Fatal("same seed produced different grids")
	}
	c := RandomGrid(12, 9, 43, 0.4)
	if a.Equal(c) {
		t.Fatal("different seeds produced identical grids")
	}
}

func TestFillBinaryDensityBounds(t *testing.T) {
	empty := RandomGrid(8, 8, 1, -1)
	if n := empty.Alive(); n != 0 {
		t.Fatalf("density<0 produced %d alive cells", n)
	}
	full := RandomGrid(8, 8, 1, 2)
	if n := full.Alive(); n != 64 {
		t.Fatalf("density>1 produced %d alive cells, expected 64", n)
	}
}
