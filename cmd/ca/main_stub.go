//go:build !ebiten

package main

import "log"

func main() {
	log.SetFlags(0)
	log.Fatal("ca: no window support in this binary; build with -tags ebiten, or run ./cmd/life -tui for the terminal view")
}
