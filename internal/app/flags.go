package app

import (
	"flag"
	"fmt"
	"runtime"
	"unicode/utf8"

	"stepca/internal/gridio"
)

// ViewConfig represents the command-line parameters for the viewer.
type ViewConfig struct {
	Input   string
	Alive   string
	Dead    string
	Rows    int
	Cols    int
	Workers int
	Scale   int
	TPS     int
	Seed    int64
}

// NewViewConfig returns a ViewConfig populated with sensible defaults.
func NewViewConfig() *ViewConfig {
	return &ViewConfig{
		Alive:   "+",
		Dead:    "-",
		Rows:    96,
		Cols:    128,
		Workers: runtime.NumCPU(),
		Scale:   6,
		TPS:     10,
		Seed:    42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *ViewConfig) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "i", c.Input, "input grid file; a random board is drawn when empty")
	fs.StringVar(&c.Alive, "alive", c.Alive, "symbol for alive cells in the input file")
	fs.StringVar(&c.Dead, "dead", c.Dead, "symbol for dead cells in the input file")
	fs.IntVar(&c.Rows, "rows", c.Rows, "rows of the random board")
	fs.IntVar(&c.Cols, "cols", c.Cols, "columns of the random board")
	fs.IntVar(&c.Workers, "t", c.Workers, "number of parallel workers per generation")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random board")
}

// Codec returns the text codec used to read -i.
func (c *ViewConfig) Codec() gridio.Codec { return symbols(c.Alive, c.Dead) }

// Validate reports out-of-range viewer settings as ErrUsage.
func (c *ViewConfig) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrUsage, c.Rows, c.Cols)
	case c.Workers < 1:
		return fmt.Errorf("%w: worker count (-t) must be at least 1, got %d", ErrUsage, c.Workers)
	case c.Scale < 1:
		return fmt.Errorf("%w: -scale must be at least 1, got %d", ErrUsage, c.Scale)
	case c.TPS < 1:
		return fmt.Errorf("%w: -tps must be at least 1, got %d", ErrUsage, c.TPS)
	}
	if utf8.RuneCountInString(c.Alive) != 1 || utf8.RuneCountInString(c.Dead) != 1 {
		return fmt.Errorf("%w: alive and dead symbols must be single characters", ErrUsage)
	}
	if err := c.Codec().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return nil
}
