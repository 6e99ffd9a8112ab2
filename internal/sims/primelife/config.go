package primelife

import "fmt"

// Config controls how many generations run and how many workers share each one.
type Config struct {
	Workers     int
	Generations int
}

// DefaultConfig returns the standard configuration: one worker, 100 generations.
func DefaultConfig() Config {
	return Config{Workers: 1, Generations: 100}
}

// Validate rejects worker counts below one and negative generation counts.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%d workers: %w", c.Workers, ErrWorkers)
	}
	if c.Generations < 0 {
		return fmt.Errorf("generation count %d must not be negative", c.Generations)
	}
	return nil
}
