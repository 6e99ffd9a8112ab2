package ui

import (
	"context"
	"strconv"
	"testing"

	"stepca/internal/core"
	"stepca/internal/sims/primelife"
)

func TestStatusLine(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.Set(0, 0, core.Alive)
	g.Set(2, 1, core.Alive)
	sim, err := primelife.New(g, primelife.Config{Workers: 3, Generations: 1})
	if err != nil {
		t.Fatal(err)
	}

	if got, want := StatusLine(sim, false), "primelife  gen 0  alive 2  workers 3"; got != want {
		t.Fatalf("StatusLine = %q, expected %q", got, want)
	}
	if err := sim.Step(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := "primelife  gen 1  alive " + strconv.Itoa(sim.Alive()) + "  workers 3  paused"
	if got := StatusLine(sim, true); got != want {
		t.Fatalf("StatusLine = %q, expected %q", got, want)
	}
}

// bareSim implements only core.Sim, without the optional counters.
type bareSim struct{ cells []core.State }

func (b bareSim) Name() string               { return "bare" }
func (b bareSim) Size() core.Size            { return core.Size{W: len(b.cells), H: 1} }
func (b bareSim) Reset(int64)                {}
func (b bareSim) Step(context.Context) error { return nil }
func (b bareSim) Cells() []core.State        { return b.cells }
func (b bareSim) Generation() int            { return 7 }

func TestStatusLineOmitsOptionalCounters(t *testing.T) {
	sim := bareSim{cells: []core.State{core.Alive, core.Dead}}
	if got, want := StatusLine(sim, false), "bare  gen 7"; got != want {
		t.Fatalf("StatusLine = %q, expected %q", got, want)
	}
}
