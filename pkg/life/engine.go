package life

import (
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"lifegrid/pkg/core"
)

// Config controls engine construction.
type Config struct {
	Width   int
	Height  int
	Pattern Pattern
	Workers int

	// Seed feeds the Random pattern. Zero seeds from the clock.
	Seed int64
	// Rand overrides Seed when set.
	Rand core.Rand
}

// Engine owns the published snapshot and a fixed pool of worker goroutines
// and advances the board one generation at a time.
//
// Advance and Reset admit one caller at a time; a second concurrent call gets
// ErrBusy. Snapshot may be called at any time and returns either the previous
// or the next generation, never a partial one.
type Engine struct {
	w, h      int
	pattern   Pattern
	initial   *Grid
	intervals []Interval
	pool      *workerPool

	cur atomic.Pointer[Grid]
	gen atomic.Uint64

	admit sync.Mutex

	mu     sync.Mutex
	fault  error
	closed bool
}

// New returns an engine running pattern on a w x h grid with the given number
// of workers.
func New(w, h int, pattern Pattern, workers int) (*Engine, error) {
	return NewWithConfig(Config{Width: w, Height: h, Pattern: pattern, Workers: workers})
}

// NewWithConfig returns an engine configured from cfg.
func NewWithConfig(cfg Config) (*Engine, error) {
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("life: create engine: %w: %d", ErrInvalidWorkers, cfg.Workers)
	}
	rnd := cfg.Rand
	if rnd == nil {
		rnd = core.NewRNG(seedOrNow(cfg.Seed))
	}
	g, err := Create(cfg.Width, cfg.Height, cfg.Pattern, rnd)
	if err != nil {
		return nil, fmt.Errorf("life: create engine: %w", err)
	}
	e, err := newEngine(g, cfg.Workers)
	if err != nil {
		return nil, err
	}
	e.pattern = cfg.Pattern
	return e, nil
}

// NewFromGrid returns an engine whose generation 0 is g.
func NewFromGrid(g *Grid, workers int) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("life: create engine: %w: nil grid", ErrInvalidSize)
	}
	return newEngine(g, workers)
}

func newEngine(g *Grid, workers int) (*Engine, error) {
	ivs, err := Partition(g.Len(), workers)
	if err != nil {
		return nil, fmt.Errorf("life: create engine: %w", err)
	}
	e := &Engine{
		w:         g.w,
		h:         g.h,
		initial:   g,
		intervals: ivs,
		pool:      newWorkerPool(workers, stepInterval),
	}
	e.cur.Store(g)
	return e, nil
}

// Advance computes the next generation and publishes it. It returns only
// after every worker finished. If any work unit fails the generation is
// discarded and the engine is poisoned for good.
func (e *Engine) Advance() error {
	if !e.admit.TryLock() {
		return ErrBusy
	}
	defer e.admit.Unlock()
	if err := e.usable(); err != nil {
		return err
	}

	src := e.cur.Load()
	next := make([]Cell, src.Len())
	if err := e.pool.dispatch(src, next, e.intervals); err != nil {
		e.mu.Lock()
		e.fault = err
		e.mu.Unlock()
		return fmt.Errorf("%w: generation %d: %w", ErrPoisoned, e.gen.Load()+1, err)
	}
	e.cur.Store(newGrid(src.w, src.h, next))
	e.gen.Add(1)
	return nil
}

func (e *Engine) usable() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	if e.fault != nil {
		return fmt.Errorf("%w: %w", ErrPoisoned, e.fault)
	}
	return nil
}

// Snapshot returns the published grid.
func (e *Engine) Snapshot() *Grid { return e.cur.Load() }

// Generation returns the number of generations advanced since generation 0.
func (e *Engine) Generation() uint64 { return e.gen.Load() }

// Workers returns the size of the worker pool.
func (e *Engine) Workers() int { return e.pool.size }

// Intervals returns a copy of the per-worker cell ranges.
func (e *Engine) Intervals() []Interval {
	out := make([]Interval, len(e.intervals))
	copy(out, e.intervals)
	return out
}

// Pattern returns the starting pattern, or "" for engines built from a grid.
func (e *Engine) Pattern() Pattern { return e.pattern }

// Population counts live cells in the published grid.
func (e *Engine) Population() int { return e.cur.Load().Population() }

// Reset publishes a fresh generation 0. Random patterns are redrawn from seed;
// engines built from a grid return to that grid. A poisoned engine cannot be
// reset and reports ErrPoisoned.
func (e *Engine) Reset(seed int64) error {
	if !e.admit.TryLock() {
		return ErrBusy
	}
	defer e.admit.Unlock()
	if err := e.usable(); err != nil {
		return err
	}

	g := e.initial
	if e.pattern != "" {
		var err error
		g, err = Create(e.w, e.h, e.pattern, core.NewRNG(seedOrNow(seed)))
		if err != nil {
			return fmt.Errorf("life: reset: %w", err)
		}
	}
	e.cur.Store(g)
	e.gen.Store(0)
	return nil
}

// Close stops the worker pool. It waits for an in-flight Advance to finish.
// Further Advance and Reset calls return ErrClosed; Snapshot keeps returning
// the last published grid.
func (e *Engine) Close() error {
	e.admit.Lock()
	defer e.admit.Unlock()
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.mu.Unlock()
	return e.pool.close()
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Step advances one generation.
func (e *Engine) Step() error { return e.Advance() }

// Cells returns the published grid as 0/1 bytes.
func (e *Engine) Cells() []uint8 { return e.cur.Load().Bytes() }

// Parameters describes the engine for viewers.
func (e *Engine) Parameters() core.ParameterSnapshot {
	pattern := e.pattern.String()
	if pattern == "" {
		pattern = "file"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", e.w),
				intParam("h", "Height", e.h),
				{Key: "pattern", Label: "Pattern", Type: core.ParamTypeString, Value: pattern},
			},
		},
		{
			Name: "Engine",
			Params: []core.Parameter{
				intParam("workers", "Workers", e.Workers()),
				intParam("intervals", "Intervals", len(e.intervals)),
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(e.Generation(), 10)},
				intParam("population", "Population", e.Population()),
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func seedOrNow(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
