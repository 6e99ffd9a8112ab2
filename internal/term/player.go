// Package term animates a simulation in a terminal using tcell.
package term

import (
	"context"
	"errors"
	"time"

	"stepca/internal/core"
	"stepca/internal/gridio"
	"stepca/internal/ui"

	"github.com/gdamore/tcell/v2"
)

// ErrAborted is returned when the user quits before the last generation.
var ErrAborted = errors.New("playback aborted")

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Reverse(true)
)

// Player draws each generation of a sim onto a tcell screen.
type Player struct {
	screen tcell.Screen
	codec  gridio.Codec
	pace   *core.FixedStep
}

// NewPlayer returns a Player drawing cells with the codec's symbols at tps
// generations per second. The caller owns the screen's Init and Fini.
func NewPlayer(screen tcell.Screen, codec gridio.Codec, tps int) *Player {
	return &Player{screen: screen, codec: codec, pace: core.NewFixedStep(tps)}
}

// Play steps sim until it reaches generations, redrawing after every step.
// Esc, q or Ctrl-C return ErrAborted.
func (p *Player) Play(ctx context.Context, sim core.Sim, generations int) error {
	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	defer close(quit)
	go p.screen.ChannelEvents(events, quit)

	p.draw(sim)
	timer := time.NewTimer(0)
	defer timer.Stop()
	for sim.Generation() < generations {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || isQuit(ev) {
				return ErrAborted
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				p.screen.Sync()
				p.draw(sim)
			}
			continue
		case <-timer.C:
		}
		if p.pace.ShouldStep() {
			if err := sim.Step(ctx); err != nil {
				return err
			}
			p.draw(sim)
		}
		timer.Reset(p.pace.Remaining())
	}
	return nil
}

func isQuit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q' || key.Rune() == 'Q'
	}
	return false
}

func (p *Player) draw(sim core.Sim) {
	p.screen.Clear()
	width, height := p.screen.Size()
	size := sim.Size()
	cells := sim.Cells()
	for x := 0; x < size.H && x < height-1; x++ {
		for y := 0; y < size.W && y < width; y++ {
			style, r := deadStyle, p.codec.Dead
			if cells[x*size.W+y] == core.Alive {
				style, r = aliveStyle, p.codec.Alive
			}
			p.screen.SetContent(y, x, r, nil, style)
		}
	}
	row := min(size.H, height-1)
	for i, r := range []rune(ui.StatusLine(sim, false)) {
		if i >= width {
			break
		}
		p.screen.SetContent(i, row, r, nil, statusStyle)
	}
	p.screen.Show()
}
