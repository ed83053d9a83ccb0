//go:build !ebiten

package ui

import "lifegrid/pkg/core"

// HUD tracks the parameter panel contents in headless builds. Nothing is
// drawn.
type HUD struct {
	sim   core.Sim
	title string
	lines []Line
}

// NewHUD returns a HUD for sim. The width is ignored.
func NewHUD(sim core.Sim, _ int) *HUD {
	return &HUD{sim: sim, title: Title(sim)}
}

// Update refreshes the cached lines from the simulation parameters.
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

// Title returns the panel heading.
func (h *HUD) Title() string { return h.title }

// Lines returns the rows computed by the last Update.
func (h *HUD) Lines() []Line { return h.lines }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
