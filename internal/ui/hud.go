//go:build ebiten

package ui

import (
	"image/color"

	"stepca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const hudHeight = 18

// HUD renders a one-line status bar along the top of the simulation view.
type HUD struct {
	sim   core.Sim
	panel *ebiten.Image
	width int
}

// NewHUD constructs a HUD spanning width pixels.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		width = 1
	}
	return &HUD{sim: sim, width: width}
}

// Draw paints the status bar onto screen.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if h == nil {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, hudHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	text.Draw(h.panel, StatusLine(h.sim, paused), basicfont.Face7x13, 4, 13, color.White)
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
