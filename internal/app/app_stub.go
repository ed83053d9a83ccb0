//go:build !ebiten

package app

import (
	"lifegrid/internal/core"
	"lifegrid/internal/ui"
	simcore "lifegrid/pkg/core"
)

// HUDWidth is the width in pixels reserved for the parameter panel.
const HUDWidth = 180

// Game drives a simulation without a window. It keeps the paced stepping and
// HUD bookkeeping of the GUI build so headless runs behave the same.
type Game struct {
	sim   simcore.Sim
	hud   *ui.HUD
	pace  *core.FixedStep
	scale int
	seed  int64
}

// New constructs a headless Game for sim.
func New(sim simcore.Sim, scale int, gps int, seed int64) *Game {
	return &Game{
		sim:   sim,
		hud:   ui.NewHUD(sim, HUDWidth),
		pace:  core.NewFixedStep(gps),
		scale: scale,
		seed:  seed,
	}
}

// Reset reinitializes the simulation with seed.
func (g *Game) Reset(seed int64) error {
	g.seed = seed
	return g.sim.Reset(seed)
}

// Update advances the simulation when a step is due.
func (g *Game) Update() error {
	if g.pace.ShouldStep() {
		if err := g.sim.Step(); err != nil {
			return err
		}
	}
	g.hud.Update()
	return nil
}

// Draw does nothing without a window.
func (g *Game) Draw(any) {}

// Layout returns the screen size the GUI build would use.
func (g *Game) Layout(int, int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}

// HUD exposes the panel state for inspection.
func (g *Game) HUD() *ui.HUD { return g.hud }
