//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
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
		log.Fatal(err)
	}
	defer eng.Close()

	game := app.New(eng, cfg.Scale, cfg.GPS, cfg.Seed)
	size := eng.Size()

	ebiten.SetWindowTitle("lifegrid - " + eng.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
