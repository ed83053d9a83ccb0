//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	simcore "lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the parameter panel right of the grid.
const HUDWidth = 180

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     simcore.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	pace    *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. gps sets how many
// generations run per second independently of the frame rate.
func New(sim simcore.Sim, scale int, gps int, seed int64) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		sim:      sim,
		painter:  gp,
		hud:      ui.NewHUD(sim, HUDWidth),
		pace:     core.NewFixedStep(gps),
		onColor:  render.DefaultPalette.Live,
		offColor: render.DefaultPalette.Dead,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) error {
	g.seed = seed
	g.tickOnce = false
	return g.sim.Reset(seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	step := g.pace.ShouldStep()
	if (!g.paused && step) || g.tickOnce {
		g.tickOnce = false
		if err := g.sim.Step(); err != nil {
			return err
		}
	}
	g.hud.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	s := g.sim.Size()
	g.hud.Draw(screen, s.W*g.scale, s.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
