// Package broadcast drives an engine on a fixed interval and fans every
// encoded generation out to subscribers.
package broadcast

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"lifegrid/internal/render"
	"lifegrid/pkg/life"
)

// Source is the part of the engine the broadcaster drives.
type Source interface {
	Advance() error
	Snapshot() *life.Grid
	Generation() uint64
}

// Encoder serializes a snapshot into a frame payload.
type Encoder func(g *life.Grid) ([]byte, error)

// TextEncoder renders frames with the two-glyph text renderer.
func TextEncoder(g *life.Grid) ([]byte, error) {
	return []byte(render.Text(g)), nil
}

// ImageEncoder renders frames as raster images in format f.
func ImageEncoder(f render.Format) Encoder {
	return func(g *life.Grid) ([]byte, error) {
		return render.EncodeBytes(g, f)
	}
}

// Frame is one published generation.
type Frame struct {
	Generation uint64
	Width      int
	Height     int
	Population int
	Elapsed    time.Duration
	Data       []byte
}

// Options tunes a Broadcaster.
type Options struct {
	// Interval between generations. Zero advances as fast as subscribers are
	// served.
	Interval time.Duration
	// Limit stops Run after this many generations. Zero runs until the
	// context is done.
	Limit int
	// SkipInitial suppresses the generation-0 frame Run normally publishes
	// before the first tick.
	SkipInitial bool
	// Block makes every subscriber receive every frame: Run waits for slow
	// subscribers instead of dropping frames for them.
	Block bool
	// Logger receives dropped-frame notices. Nil discards them.
	Logger *log.Logger
}

// Broadcaster periodically advances a Source and publishes encoded frames.
// Unless Options.Block is set, slow subscribers miss frames rather than
// stalling the loop.
type Broadcaster struct {
	src  Source
	enc  Encoder
	opts Options

	mu     sync.Mutex
	subs   map[int]*subscriber
	nextID int
	closed bool
}

type subscriber struct {
	ch   chan Frame
	done chan struct{}
}

// New returns a Broadcaster for src.
func New(src Source, enc Encoder, opts Options) *Broadcaster {
	if enc == nil {
		enc = TextEncoder
	}
	return &Broadcaster{src: src, enc: enc, opts: opts, subs: map[int]*subscriber{}}
}

// Subscribe registers a subscriber with the given channel buffer. The
// returned cancel func unsubscribes and closes the channel. Channels are also
// closed when Run returns.
func (b *Broadcaster) Subscribe(buffer int) (<-chan Frame, func()) {
	if buffer < 0 {
		buffer = 0
	}
	ch := make(chan Frame, buffer)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	sub := &subscriber{ch: ch, done: make(chan struct{})}
	b.subs[id] = sub
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			// Wakes a blocked publish before taking the lock it holds.
			close(sub.done)
			b.mu.Lock()
			defer b.mu.Unlock()
			if s, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(s.ch)
			}
		})
	}
}

// Subscribers returns the number of active subscribers.
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Run advances the source every interval and publishes each generation until
// ctx is done, the limit is reached, or an advance or encode fails. A context
// cancellation is not reported as an error.
func (b *Broadcaster) Run(ctx context.Context) error {
	defer b.closeAll()

	if !b.opts.SkipInitial {
		if err := b.publish(ctx, 0); err != nil {
			return err
		}
	}

	var tick <-chan time.Time
	if b.opts.Interval > 0 {
		t := time.NewTicker(b.opts.Interval)
		defer t.Stop()
		tick = t.C
	}

	for n := 0; b.opts.Limit <= 0 || n < b.opts.Limit; n++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		start := time.Now()
		if err := b.src.Advance(); err != nil {
			return fmt.Errorf("broadcast: advance: %w", err)
		}
		if err := b.publish(ctx, time.Since(start)); err != nil {
			return err
		}
	}
	return nil
}

func (b *Broadcaster) publish(ctx context.Context, elapsed time.Duration) error {
	g := b.src.Snapshot()
	data, err := b.enc(g)
	if err != nil {
		return fmt.Errorf("broadcast: encode: %w", err)
	}
	f := Frame{
		Generation: b.src.Generation(),
		Width:      g.Width(),
		Height:     g.Height(),
		Population: g.Population(),
		Elapsed:    elapsed,
		Data:       data,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for id, sub := range b.subs {
		if b.opts.Block {
			select {
			case sub.ch <- f:
			case <-sub.done:
			case <-ctx.Done():
				return nil
			}
			continue
		}
		select {
		case sub.ch <- f:
		default:
			if b.opts.Logger != nil {
				b.opts.Logger.Printf("broadcast: subscriber %d dropped generation %d", id, f.Generation)
			}
		}
	}
	return nil
}

func (b *Broadcaster) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
}

// ErrStopped can be returned by subscribers that want to end a Drain early.
var ErrStopped = errors.New("broadcast: stopped")

// Drain calls fn for every frame on ch until ch closes or fn returns an
// error. ErrStopped is swallowed.
func Drain(ch <-chan Frame, fn func(Frame) error) error {
	for f := range ch {
		if err := fn(f); err != nil {
			if errors.Is(err, ErrStopped) {
				return nil
			}
			return err
		}
	}
	return nil
}
