package main

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/render"
	"lifegrid/pkg/life"
)

// slowWriter stalls every write so frames pile up behind the printer.
type slowWriter struct {
	buf   bytes.Buffer
	delay time.Duration
}

func (w *slowWriter) Write(p []byte) (int, error) {
	time.Sleep(w.delay)
	return w.buf.Write(p)
}

func TestRunStreamPrintsEveryTick(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 20, 20
	cfg.Pattern = life.Glider.String()
	cfg.Workers = 3
	cfg.Interval = 0
	cfg.Generations = 60
	cfg.Debug = true
	eng, err := cfg.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer eng.Close()

	w := &slowWriter{delay: time.Millisecond}
	if err := runStream(context.Background(), eng, cfg, w); err != nil {
		t.Fatalf("runStream: %v", err)
	}
	if eng.Generation() != 60 {
		t.Fatalf("engine at generation %d, want 60", eng.Generation())
	}
	lines := strings.Split(strings.TrimSuffix(w.buf.String(), "\n"), "\n")
	if len(lines) != 61 {
		t.Fatalf("printed %d tick lines, want 61", len(lines))
	}
	for i, l := range lines {
		if want := "Tick " + strconv.Itoa(i) + " ! "; !strings.HasPrefix(l, want) {
			t.Fatalf("line %d is %q, want prefix %q", i, l, want)
		}
	}
}

func TestRunStreamPrintsBoards(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Pattern = life.Blinker.String()
	cfg.Workers = 2
	cfg.Interval = 0
	cfg.Generations = 2
	eng, err := cfg.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer eng.Close()

	w := &slowWriter{delay: 2 * time.Millisecond}
	if err := runStream(context.Background(), eng, cfg, w); err != nil {
		t.Fatalf("runStream: %v", err)
	}

	vertical, err := life.ParseGridString(".....\n..*..\n..*..\n..*..\n.....\n")
	if err != nil {
		t.Fatal(err)
	}
	horizontal, err := life.ParseGridString(".....\n.....\n.***.\n.....\n.....\n")
	if err != nil {
		t.Fatal(err)
	}
	frame := func(g *life.Grid) string { return "\n\n\n\n" + render.Text(g) }
	want := frame(vertical) + frame(horizontal) + frame(vertical)
	if got := w.buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}
