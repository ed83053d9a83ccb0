package life

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"lifegrid/pkg/core"
)

// Pattern names a starting configuration for generation 0.
type Pattern string

const (
	Empty   Pattern = "empty"
	Random  Pattern = "random"
	Glider  Pattern = "glider"
	Blinker Pattern = "blinker"
)

// String returns the pattern name.
func (p Pattern) String() string { return string(p) }

// InitFunc builds generation 0 for a pattern. Width and height are already
// validated as positive when an InitFunc runs.
type InitFunc func(w, h int, rnd core.Rand) (*Grid, error)

var patterns = map[Pattern]InitFunc{}

// RegisterPattern adds an initializer under the provided name.
func RegisterPattern(p Pattern, f InitFunc) {
	if p == "" || f == nil {
		return
	}
	patterns[p] = f
}

// Patterns lists the registered pattern names in sorted order.
func Patterns() []Pattern {
	out := make([]Pattern, 0, len(patterns))
	for p := range patterns {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParsePattern resolves a case-insensitive pattern name.
func ParsePattern(s string) (Pattern, error) {
	p := Pattern(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := patterns[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPattern, s)
	}
	return p, nil
}

// Create builds generation 0 of pattern p on a w x h grid. Random draws one
// value per cell from rnd; a nil rnd is seeded from the clock. Every pattern
// except Blinker honors w and h. Blinker always yields a 5x5 grid regardless
// of the requested dimensions.
func Create(w, h int, p Pattern, rnd core.Rand) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	f, ok := patterns[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, string(p))
	}
	if rnd == nil {
		rnd = core.NewRNG(time.Now().UnixNano())
	}
	return f(w, h, rnd)
}

func initEmpty(w, h int, _ core.Rand) (*Grid, error) {
	return newGrid(w, h, make([]Cell, w*h)), nil
}

func initRandom(w, h int, rnd core.Rand) (*Grid, error) {
	cells := make([]Cell, w*h)
	core.FillBinary(rnd, cells)
	return newGrid(w, h, cells), nil
}

func initGlider(w, h int, _ core.Rand) (*Grid, error) {
	offsets := [...]int{2*w + 0, 2*w + 1, 2*w + 2, 1*w + 2, 0*w + 1}
	cells := make([]Cell, w*h)
	for _, off := range offsets {
		if off >= len(cells) {
			return nil, fmt.Errorf("%w: glider needs index %d on %dx%d grid", ErrPatternTooSmall, off, w, h)
		}
		cells[off] = Live
	}
	return newGrid(w, h, cells), nil
}

const blinkerSize = 5

// initBlinker ignores w and h: the blinker is a fixed 5x5 test field with a
// vertical bar through the center.
func initBlinker(_, _ int, _ core.Rand) (*Grid, error) {
	cells := make([]Cell, blinkerSize*blinkerSize)
	for y := 1; y <= 3; y++ {
		cells[y*blinkerSize+2] = Live
	}
	return newGrid(blinkerSize, blinkerSize, cells), nil
}

func init() {
	RegisterPattern(Empty, initEmpty)
	RegisterPattern(Random, initRandom)
	RegisterPattern(Glider, initGlider)
	RegisterPattern(Blinker, initBlinker)
}
