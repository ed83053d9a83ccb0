// Command life runs Conway's Game of Life in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"lifegrid/internal/app"
	"lifegrid/internal/broadcast"
	"lifegrid/internal/render"
	"lifegrid/internal/term"
	"lifegrid/pkg/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	configPath := flag.String("config", "", "JSON config file; explicit flags override it")
	flag.Parse()

	if *configPath != "" {
		loaded, err := app.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		if err := loaded.Overlay(flag.CommandLine); err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}

	eng, err := cfg.NewEngine()
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	defer eng.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.TUI {
		err = runTUI(ctx, eng, cfg)
	} else {
		err = runStream(ctx, eng, cfg, os.Stdout)
	}
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	if cfg.Out != "" {
		if err := writeImage(cfg.Out, cfg.Format, eng.Snapshot()); err != nil {
			log.Fatalf("write %s: %v", cfg.Out, err)
		}
		log.Printf("wrote generation %d to %s", eng.Generation(), cfg.Out)
	}
}

func runTUI(ctx context.Context, eng *life.Engine, cfg *app.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	return term.New(screen, eng, term.Options{
		Interval: time.Duration(cfg.Interval),
		Limit:    cfg.Generations,
	}).Run(ctx)
}

// runStream prints every generation to w, waiting for w rather than skipping
// frames. In debug mode only the generation number and its step time are
// printed.
func runStream(ctx context.Context, eng *life.Engine, cfg *app.Config, w io.Writer) error {
	enc := broadcast.TextEncoder
	if cfg.Debug {
		enc = func(*life.Grid) ([]byte, error) { return nil, nil }
	}
	b := broadcast.New(eng, enc, broadcast.Options{
		Interval: time.Duration(cfg.Interval),
		Limit:    cfg.Generations,
		Block:    true,
	})
	frames, cancel := b.Subscribe(1)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return b.Run(ctx) })
	g.Go(func() error {
		return broadcast.Drain(frames, func(f broadcast.Frame) error {
			var err error
			if cfg.Debug {
				_, err = fmt.Fprintf(w, "Tick %d ! %s\n", f.Generation, f.Elapsed)
			} else {
				_, err = fmt.Fprintf(w, "\n\n\n\n%s", f.Data)
			}
			return err
		})
	})
	return g.Wait()
}

func writeImage(path, format string, g *life.Grid) (err error) {
	f, err := render.ParseFormat(format)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()
	return render.Encode(out, g, f)
}
