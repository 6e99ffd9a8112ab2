package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"stepca/internal/gridio"
	"stepca/internal/sims/primelife"

	"gopkg.in/yaml.v3"
)

// ErrUsage marks configuration mistakes that are reported before any work starts.
var ErrUsage = errors.New("usage")

// Config holds the batch run settings. Every field can come from a YAML file
// named by -config; flags given on the command line take precedence.
type Config struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Workers     int    `yaml:"workers"`
	Generations int    `yaml:"generations"`
	Alive       string `yaml:"alive"`
	Dead        string `yaml:"dead"`
	Print       bool   `yaml:"print"`
	Watch       bool   `yaml:"watch"`
	TPS         int    `yaml:"tps"`
	Quiet       bool   `yaml:"quiet"`

	ConfigFile string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults: one worker,
// 100 generations and the +/- encoding.
func NewConfig() *Config {
	engine := primelife.DefaultConfig()
	codec := gridio.DefaultCodec()
	return &Config{
		Workers:     engine.Workers,
		Generations: engine.Generations,
		Alive:       string(codec.Alive),
		Dead:        string(codec.Dead),
		Print:       true,
		TPS:         10,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "i", c.Input, "input grid file (required)")
	fs.StringVar(&c.Output, "o", c.Output, "output grid file (required)")
	fs.IntVar(&c.Workers, "t", c.Workers, "number of parallel workers per generation")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to simulate")
	fs.StringVar(&c.Alive, "alive", c.Alive, "symbol for alive cells")
	fs.StringVar(&c.Dead, "dead", c.Dead, "symbol for dead cells")
	fs.BoolVar(&c.Print, "print", c.Print, "print the final grid to stdout")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "animate the run in the terminal")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second in -watch mode")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "suppress the run summary")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML file with default settings")
}

// LoadFile overlays the YAML document at path onto c.
func (c *Config) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: config file: %w", ErrUsage, err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("%w: config file %s: %w", ErrUsage, path, err)
	}
	return nil
}

// Parse builds a Config from command-line arguments. When -config is given the
// file is loaded first and the arguments are applied on top of it.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	cfg := NewConfig()
	fs := newFlagSet(name, cfg, output)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if cfg.ConfigFile != "" {
		path := cfg.ConfigFile
		cfg = NewConfig()
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
		fs = newFlagSet(name, cfg, output)
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUsage, err)
		}
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %q", ErrUsage, fs.Args())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newFlagSet(name string, cfg *Config, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	cfg.Bind(fs)
	return fs
}

// Validate reports missing or out-of-range settings as ErrUsage.
func (c *Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: input file (-i) is required", ErrUsage)
	case c.Output == "":
		return fmt.Errorf("%w: output file (-o) is required", ErrUsage)
	case c.Workers < 1:
		return fmt.Errorf("%w: worker count (-t) must be at least 1, got %d", ErrUsage, c.Workers)
	case c.Generations < 1:
		return fmt.Errorf("%w: generation count must be at least 1, got %d", ErrUsage, c.Generations)
	case c.Watch && c.TPS < 1:
		return fmt.Errorf("%w: -tps must be at least 1, got %d", ErrUsage, c.TPS)
	}
	if utf8.RuneCountInString(c.Alive) != 1 || utf8.RuneCountInString(c.Dead) != 1 {
		return fmt.Errorf("%w: alive and dead symbols must be single characters", ErrUsage)
	}
	if err := c.Codec().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	info, err := os.Stat(c.Input)
	if err != nil {
		return fmt.Errorf("%w: input file: %w", ErrUsage, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: input %s is a directory", ErrUsage, c.Input)
	}
	return nil
}

// Codec returns the text codec for the configured symbols.
func (c *Config) Codec() gridio.Codec { return symbols(c.Alive, c.Dead) }

func symbols(alive, dead string) gridio.Codec {
	a, _ := utf8.DecodeRuneInString(alive)
	d, _ := utf8.DecodeRuneInString(dead)
	return gridio.Codec{Alive: a, Dead: d}
}

// Engine returns the step engine settings.
func (c *Config) Engine() primelife.Config {
	return primelife.Config{Workers: c.Workers, Generations: c.Generations}
}
