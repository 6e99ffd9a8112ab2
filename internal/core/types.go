package core

import "context"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract the viewer and terminal player drive. Step may
// fail; a failed step leaves the current generation untouched.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step(ctx context.Context) error
	Cells() []State
	Generation() int
}
