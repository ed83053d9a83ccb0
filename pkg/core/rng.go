package core

import "math/rand/v2"

// Rand is the randomness source consumed by pattern initializers. Tests supply
// fixed sequences; production code uses RNG.
type Rand interface {
	Bool() bool
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// FillBinary fills the buffer with 0/1 values drawn from src.
func FillBinary[T ~uint8](src Rand, buf []T) {
	for i := range buf {
		buf[i] = 0
		if src.Bool() {
			buf[i] = 1
		}
	}
}

// Sequence replays a fixed list of booleans, cycling when exhausted. An empty
// sequence always yields false.
type Sequence struct {
	vals []bool
	pos  int
}

// NewSequence returns a Sequence over vals.
func NewSequence(vals ...bool) *Sequence {
	return &Sequence{vals: vals}
}

// Bool returns the next value in the sequence.
func (s *Sequence) Bool() bool {
	if len(s.vals) == 0 {
		return false
	}
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v
}
