package primelife

import (
	"fmt"

	"stepca/internal/core"
)

// Partition deals every coordinate of a rows x cols grid, in row-major order,
// round-robin across workers partitions: coordinate i lands in partition
// i % workers. Partitions are disjoint, cover the grid, and differ in length
// by at most one. Surplus workers receive empty partitions.
func Partition(rows, cols, workers int) ([][]core.Coord, error) {
	if workers < 1 {
		return nil, fmt.Errorf("partition across %d workers: %w", workers, ErrWorkers)
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("partition %dx%d grid: %w", rows, cols, ErrShape)
	}
	total := rows * cols
	parts := make([][]core.Coord, workers)
	for p := range parts {
		size := total / workers
		if p < total%workers {
			size++
		}
		parts[p] = make([]core.Coord, 0, size)
	}
	i := 0
	for x := 0; x < rows; x++ {
		for y := 0; y < cols; y++ {
			p := i % workers
			parts[p] = append(parts[p], core.Coord{X: x, Y: y})
			i++
		}
	}
	return parts, nil
}
