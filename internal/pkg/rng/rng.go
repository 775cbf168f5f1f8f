// Package rng provides the random source used by the game rules.
// All probabilistic rules (crit rolls, flee attempts, loot drops,
// enemy level rolls) take a Roller so tests can substitute a
// deterministic source.
package rng

import (
	"math/rand/v2"
)

// Roller is a source of uniform random values
type Roller interface {
	// Float64 returns a uniform random float in [0, 1)
	Float64() float64

	// IntN returns a uniform random int in [lo, hi] inclusive
	IntN(lo, hi int) int
}

type source struct {
	r *rand.Rand
}

// New returns a Roller backed by an unseeded PCG source
func New() Roller {
	return &source{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a deterministic Roller for the given seed
func NewSeeded(seed uint64) Roller {
	return &source{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s *source) Float64() float64 {
	return s.r.Float64()
}

func (s *source) IntN(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

// Script is a Roller that replays fixed values, for tests. Float64
// consumes from Floats and IntN from Ints; both repeat their last
// value when exhausted.
type Script struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

// Float64 returns the next scripted float
func (s *Script) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[min(s.fi, len(s.Floats)-1)]
	s.fi++
	return v
}

// IntN returns the next scripted int clamped to [lo, hi]
func (s *Script) IntN(lo, hi int) int {
	if len(s.Ints) == 0 {
		return lo
	}
	v := s.Ints[min(s.ii, len(s.Ints)-1)]
	s.ii++
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
