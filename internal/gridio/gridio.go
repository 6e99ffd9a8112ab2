// Package gridio reads and writes grids in a line-per-row, two-symbol text
// encoding: one character per cell, one row per line.
package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"stepca/internal/core"
)

var (
	// ErrEmpty reports input without a single non-blank row.
	ErrEmpty = errors.New("grid has no rows")
	// ErrRagged reports rows of differing length.
	ErrRagged = errors.New("grid rows differ in length")
	// ErrBadCell reports a character that is neither the alive nor the dead symbol.
	ErrBadCell = errors.New("unrecognised cell character")
	// ErrSymbols reports an unusable alive/dead symbol pair.
	ErrSymbols = errors.New("alive and dead symbols must be distinct, printable and non-space")
)

// Codec maps the two cell states to text symbols.
type Codec struct {
	Alive rune
	Dead  rune
}

// DefaultCodec uses '+' for alive and '-' for dead.
func DefaultCodec() Codec {
	return Codec{Alive: '+', Dead: '-'}
}

// Validate rejects identical, whitespace or non-printable symbols.
func (c Codec) Validate() error {
	if c.Alive == c.Dead {
		return ErrSymbols
	}
	for _, r := range []rune{c.Alive, c.Dead} {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return fmt.Errorf("symbol %q: %w", r, ErrSymbols)
		}
	}
	return nil
}

// Decode reads a grid. Each line is trimmed of surrounding whitespace and
// blank lines are skipped. All remaining rows must have the same length.
func (c Codec) Decode(r io.Reader) (*core.Grid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var rows [][]core.State
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row := make([]core.State, 0, len(text))
		col := 0
		for _, ch := range text {
			col++
			switch ch {
			case c.Alive:
				row = append(row, core.Alive)
			case c.Dead:
				row = append(row, core.Dead)
			default:
				return nil, fmt.Errorf("line %d column %d: %q: %w", line, col, ch, ErrBadCell)
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d has %d cells, expected %d: %w", line, len(row), len(rows[0]), ErrRagged)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	g := core.NewGrid(len(rows), len(rows[0]))
	cells := g.Cells()
	for x, row := range rows {
		copy(cells[g.Index(x, 0):], row)
	}
	return g, nil
}

// Encode writes one line per row with no separators between cells.
func (c Codec) Encode(w io.Writer, g *core.Grid) error {
	return c.write(w, g, "")
}

// Pretty writes one line per row with cells separated by a single space, the
// console layout used after a run.
func (c Codec) Pretty(w io.Writer, g *core.Grid) error {
	return c.write(w, g, " ")
}

func (c Codec) write(w io.Writer, g *core.Grid, sep string) error {
	bw := bufio.NewWriter(w)
	for x := 0; x < g.Rows; x++ {
		for y := 0; y < g.Cols; y++ {
			if y > 0 && sep != "" {
				bw.WriteString(sep)
			}
			bw.WriteRune(c.symbol(g.At(x, y)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (c Codec) symbol(s core.State) rune {
	if s == core.Alive {
		return c.Alive
	}
	return c.Dead
}

// LoadFile decodes the grid stored at path.
func (c Codec) LoadFile(path string) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := c.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// SaveFile encodes g to path, replacing any existing file.
func (c Codec) SaveFile(path string, g *core.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Encode(f, g); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
