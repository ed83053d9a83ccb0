package life

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

type stepFunc func(src *Grid, dst []Cell, iv Interval)

// unit is one interval of one generation handed to a worker.
type unit struct {
	src *Grid
	dst []Cell
	iv  Interval
	gen *generation
}

// generation is the barrier shared by all units of one Advance.
type generation struct {
	wg  sync.WaitGroup
	mu  sync.Mutex
	err error
}

func (g *generation) fail(err error) {
	g.mu.Lock()
	if g.err == nil {
		g.err = err
	}
	g.mu.Unlock()
}

// workerPool is a fixed set of goroutines started once and fed work units
// over a channel until close.
type workerPool struct {
	size  int
	step  stepFunc
	units chan unit
	group errgroup.Group
}

func newWorkerPool(size int, step stepFunc) *workerPool {
	p := &workerPool{size: size, step: step, units: make(chan unit)}
	for i := 0; i < size; i++ {
		p.group.Go(p.loop)
	}
	return p
}

func (p *workerPool) loop() error {
	for u := range p.units {
		p.run(u)
	}
	return nil
}

func (p *workerPool) run(u unit) {
	defer u.gen.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			u.gen.fail(fmt.Errorf("cells [%d,%d): %v", u.iv.Start, u.iv.End, r))
		}
	}()
	p.step(u.src, u.dst, u.iv)
}

// dispatch runs one unit per interval and blocks until all of them finish.
// Each unit gets the sub-slice of dst covering its interval, capped so it
// cannot reach a neighbor's cells.
func (p *workerPool) dispatch(src *Grid, dst []Cell, ivs []Interval) error {
	gen := &generation{}
	gen.wg.Add(len(ivs))
	for _, iv := range ivs {
		p.units <- unit{src: src, dst: dst[iv.Start:iv.End:iv.End], iv: iv, gen: gen}
	}
	gen.wg.Wait()
	return gen.err
}

// close stops the workers and waits for them to exit.
func (p *workerPool) close() error {
	close(p.units)
	return p.group.Wait()
}
