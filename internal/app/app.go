//go:build ebiten

package app

import (
	"context"
	"image/color"
	"time"

	"stepca/internal/core"
	"stepca/internal/render"
	"stepca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim, size.W*scale),
		onColor:  color.RGBA{R: 120, G: 230, B: 140, A: 255},
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles per-frame input and advances the simulation. A failed step
// ends the game with that error.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sim.Reset(time.Now().UnixNano())
	}

	if !g.paused || g.tickOnce {
		g.tickOnce = false
		return g.sim.Step(context.Background())
	}
	return nil
}

// Draw renders the current generation and the status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
