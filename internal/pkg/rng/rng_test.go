package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codequest-gg/codequest-api/internal/pkg/rng"
)

func TestSeeded_Deterministic(t *testing.T) {
	a := rng.NewSeeded(42)
	b := rng.NewSeeded(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.IntN(1, 10), b.IntN(1, 10))
	}
}

func TestIntN_Bounds(t *testing.T) {
	r := rng.NewSeeded(7)

	for i := 0; i < 1000; i++ {
		v := r.IntN(3, 5)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 5)
	}

	// Degenerate range collapses to lo
	assert.Equal(t, 4, r.IntN(4, 4))
	assert.Equal(t, 4, r.IntN(4, 2))
}

func TestFloat64_HalfOpen(t *testing.T) {
	r := rng.NewSeeded(99)

	for i := 0; i < 1000; i++ {
		v := r.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestScript_Replay(t *testing.T) {
	s := &rng.Script{Floats: []float64{0.9, 0.01}, Ints: []int{3}}

	assert.Equal(t, 0.9, s.Float64())
	assert.Equal(t, 0.01, s.Float64())
	// Exhausted floats repeat the last value
	assert.Equal(t, 0.01, s.Float64())

	assert.Equal(t, 3, s.IntN(1, 5))
	// Clamped to range
	assert.Equal(t, 2, s.IntN(1, 2))
}
