// Package term shows a running engine in a full-screen terminal.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifegrid/pkg/life"
)

// Engine is the part of life.Engine the view drives.
type Engine interface {
	Advance() error
	Snapshot() *life.Grid
	Generation() uint64
}

// Options tunes a View.
type Options struct {
	Interval time.Duration
	// Limit stops advancing after this many generations. The view stays open
	// until the user quits.
	Limit int
}

var (
	liveStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// View draws the engine's snapshot on a tcell screen. Space pauses, n steps
// once while paused, q or Esc quits.
type View struct {
	screen tcell.Screen
	eng    Engine
	opts   Options
	paused bool
}

// New returns a View on an initialized screen.
func New(screen tcell.Screen, eng Engine, opts Options) *View {
	if opts.Interval <= 0 {
		opts.Interval = 60 * time.Millisecond
	}
	return &View{screen: screen, eng: eng, opts: opts}
}

// Draw paints the current generation and a status line.
func (v *View) Draw() {
	g := v.eng.Snapshot()
	v.screen.Clear()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			r, style := '░', deadStyle
			if g.At(x, y) == life.Live {
				r, style = '█', liveStyle
			}
			v.screen.SetContent(2*x, y, r, nil, style)
			v.screen.SetContent(2*x+1, y, r, nil, style)
		}
	}
	state := "running"
	if v.paused {
		state = "paused"
	}
	status := fmt.Sprintf(" gen %d  pop %d  %s  [space] pause  [n] step  [q] quit ",
		v.eng.Generation(), g.Population(), state)
	for i, r := range status {
		v.screen.SetContent(i, g.Height(), r, nil, statusStyle)
	}
	v.screen.Show()
}

func (v *View) done() bool {
	return v.opts.Limit > 0 && v.eng.Generation() >= uint64(v.opts.Limit)
}

// Run advances and redraws until the user quits, ctx is done, or Advance
// fails.
func (v *View) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(v.opts.Interval)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return nil
				case ev.Rune() == ' ':
					v.paused = !v.paused
				case ev.Rune() == 'n' && v.paused && !v.done():
					if err := v.eng.Advance(); err != nil {
						return err
					}
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
			v.Draw()
		case <-ticker.C:
			if v.paused || v.done() {
				continue
			}
			if err := v.eng.Advance(); err != nil {
				return err
			}
			v.Draw()
		}
	}
}
