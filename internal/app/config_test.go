package app

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseDefaults(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "+-\n-+\n")
	cfg, err := Parse("stepca", []string{"-i", in, "-o", filepath.Join(dir, "out.txt")}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workers != 1 || cfg.Generations != 100 {
		t.Fatalf("defaults workers=%d generations=%d, expected 1 and 100", cfg.Workers, cfg.Generations)
	}
	codec := cfg.Codec()
	if codec.Alive != '+' || codec.Dead != '-' {
		t.Fatalf("default symbols %q/%q", codec.Alive, codec.Dead)
	}
	if engine := cfg.Engine(); engine.Workers != 1 || engine.Generations != 100 {
		t.Fatalf("Engine() = %+v", engine)
	}
}

func TestParseUsageErrors(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "+\n")
	out := filepath.Join(dir, "out.txt")
	cases := map[string][]string{
		"missing input":    {"-o", out},
		"missing output":   {"-i", in},
		"zero workers":     {"-i", in, "-o", out, "-t", "0"},
		"negative workers": {"-i", in, "-o", out, "-t", "-2"},
		"no generations":   {"-i", in, "-o", out, "-generations", "0"},
		"absent input":     {"-i", filepath.Join(dir, "nope.txt"), "-o", out},
		"input dir":        {"-i", dir, "-o", out},
		"same symbols":     {"-i", in, "-o", out, "-alive", "x", "-dead", "x"},
		"long symbol":      {"-i", in, "-o", out, "-alive", "on"},
		"unknown flag":     {"-i", in, "-o", out, "-bogus"},
		"stray argument":   {"-i", in, "-o", out, "extra"},
		"bad worker text":  {"-i", in, "-o", out, "-t", "many"},
	}
	for name, args := range cases {
		if _, err := Parse("stepca", args, io.Discard); !errors.Is(err, ErrUsage) {
			t.Errorf("%s: err = %v, expected ErrUsage", name, err)
		}
	}
}

func TestParseHelp(t *testing.T) {
	_, err := Parse("stepca", []string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, expected flag.ErrHelp", err)
	}
}

func TestParseConfigFileWithOverrides(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", "#.\n.#\n")
	conf := writeFile(t, dir, "run.yaml", `
input: `+in+`
output: `+filepath.Join(dir, "from-file.txt")+`
workers: 6
generations: 12
alive: "#"
dead: "."
print: false
`)
	cfg, err := Parse("stepca", []string{"-config", conf, "-t", "3"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workers != 3 {
		t.Fatalf("Workers = %d, expected the flag value 3", cfg.Workers)
	}
	if cfg.Generations != 12 || cfg.Print {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Input != in || cfg.Output != filepath.Join(dir, "from-file.txt") {
		t.Fatalf("paths from file not applied: %+v", cfg)
	}
	if c := cfg.Codec(); c.Alive != '#' || c.Dead != '.' {
		t.Fatalf("symbols from file not applied: %q/%q", c.Alive, c.Dead)
	}
}

func TestParseBadConfigFile(t *testing.T) {
	dir := t.TempDir()
	conf := writeFile(t, dir, "bad.yaml", "workers: [1, 2\n")
	if _, err := Parse("stepca", []string{"-config", conf}, io.Discard); !errors.Is(err, ErrUsage) {
		t.Fatalf("malformed YAML: err = %v, expected ErrUsage", err)
	}
	if _, err := Parse("stepca", []string{"-config", filepath.Join(dir, "none.yaml")}, io.Discard); !errors.Is(err, ErrUsage) {
		t.Fatalf("missing config: err = %v, expected ErrUsage", err)
	}
}

func TestViewConfigBind(t *testing.T) {
	cfg := NewViewConfig()
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-t", "2", "-scale", "3", "-alive", "o", "-dead", "."}); err != nil {
		t.Fatal(err)
	}
	if cfg.Workers != 2 || cfg.Scale != 3 {
		t.Fatalf("flags not bound: %+v", cfg)
	}
	if c := cfg.Codec(); c.Alive != 'o' || c.Dead != '.' {
		t.Fatalf("Codec() = %q/%q", c.Alive, c.Dead)
	}
}

func TestViewConfigValidate(t *testing.T) {
	if err := NewViewConfig().Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
	cases := map[string]func(*ViewConfig){
		"zero scale":    func(c *ViewConfig) { c.Scale = 0 },
		"negative tps":  func(c *ViewConfig) { c.TPS = -1 },
		"zero rows":     func(c *ViewConfig) { c.Rows = 0 },
		"negative cols": func(c *ViewConfig) { c.Cols = -4 },
		"zero workers":  func(c *ViewConfig) { c.Workers = 0 },
		"long symbol":   func(c *ViewConfig) { c.Alive = "##" },
		"same symbols":  func(c *ViewConfig) { c.Dead = c.Alive },
	}
	for name, mutate := range cases {
		cfg := NewViewConfig()
		mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrUsage) {
			t.Fatalf("%s: err = %v, expected ErrUsage", name, err)
		}
	}
}
