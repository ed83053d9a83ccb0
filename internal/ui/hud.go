//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
	lines      []Line
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: Title(sim)}
}

// Update refreshes the cached parameter lines from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.lines = nil
		return
	}
	h.lines = Lines(provider.Parameters())
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.lines) == 0 {
		text.Draw(h.panel, "No parameters", face, panelPadding, y+lineHeight, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}
	for _, l := range h.lines {
		y += lineHeight
		if l.Header {
			text.Draw(h.panel, l.Label, face, panelPadding, y, color.RGBA{R: 140, G: 170, B: 220, A: 255})
			continue
		}
		text.Draw(h.panel, l.Label, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		bounds := text.BoundString(face, l.Value)
		text.Draw(h.panel, l.Value, face, h.width-panelPadding-bounds.Dx(), y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 18
	headerBaseline = 18
)
