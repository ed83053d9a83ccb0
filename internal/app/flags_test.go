package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lifegrid/pkg/life"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-w", "12", "-h", "9", "-pattern", "glider", "-workers", "3", "-interval", "250ms", "-tui"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 12 || cfg.Height != 9 || cfg.Pattern != "glider" || cfg.Workers != 3 || !cfg.TUI {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if time.Duration(cfg.Interval) != 250*time.Millisecond {
		t.Fatalf("interval %v", time.Duration(cfg.Interval))
	}
}

func TestFromMapKeepsDefaultsOnBadValues(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":        "-4",
		"h":        "20",
		"workers":  "x",
		"pattern":  "BLINKER",
		"interval": "nope",
		"format":   "bmp",
		"seed":     "17",
	})
	def := NewConfig()
	if cfg.Width != def.Width || cfg.Workers != def.Workers || cfg.Interval != def.Interval {
		t.Fatalf("invalid values must keep defaults: %+v", cfg)
	}
	if cfg.Height != 20 || cfg.Pattern != "blinker" || cfg.Format != "bmp" || cfg.Seed != 17 {
		t.Fatalf("valid values not applied: %+v", cfg)
	}
	if FromMap(nil).Width != def.Width {
		t.Fatal("nil map must return defaults")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	body := `{"width": 30, "height": 10, "pattern": "glider", "workers": 6, "interval": "1s"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 30 || cfg.Height != 10 || cfg.Pattern != "glider" || cfg.Workers != 6 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if time.Duration(cfg.Interval) != time.Second {
		t.Fatalf("interval %v", time.Duration(cfg.Interval))
	}
	if cfg.Format != "png" {
		t.Fatal("unset fields must keep defaults")
	}

	if err := os.WriteFile(path, []byte(`{"interval": 5000}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if time.Duration(cfg.Interval) != 5*time.Microsecond {
		t.Fatalf("numeric interval %v", time.Duration(cfg.Interval))
	}
}

func TestOverlayKeepsFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	NewConfig().Bind(fs)
	if err := fs.Parse([]string{"-workers", "9", "-debug"}); err != nil {
		t.Fatal(err)
	}
	fileCfg := NewConfig()
	fileCfg.Workers = 2
	fileCfg.Width = 50
	if err := fileCfg.Overlay(fs); err != nil {
		t.Fatalf("Overlay: %v", err)
	}
	if fileCfg.Workers != 9 || !fileCfg.Debug || fileCfg.Width != 50 {
		t.Fatalf("unexpected config %+v", fileCfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	cfg.Width = 0
	cfg.Workers = -1
	cfg.Pattern = "pulsar"
	err := cfg.Validate()
	for _, want := range []error{life.ErrInvalidSize, life.ErrInvalidWorkers, life.ErrUnknownPattern} {
		if !errors.Is(err, want) {
			t.Fatalf("Validate()=%v, missing %v", err, want)
		}
	}
}

func TestNewEngineFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.txt")
	if err := os.WriteFile(path, []byte(".....\n.***.\n.....\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.Load = path
	cfg.Workers = 2
	e, err := cfg.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer e.Close()
	if s := e.Size(); s.W != 5 || s.H != 3 {
		t.Fatalf("size %+v", s)
	}
	if err := e.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if got := e.Snapshot().String(); got != "..*..\n..*..\n..*..\n" {
		t.Fatalf("unexpected generation 1:\n%s", got)
	}
}
