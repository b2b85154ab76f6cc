package engine

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
)

// RandomSource yields independent uniform draws in [0, 1)
type RandomSource interface {
	Float64() float64
}

// NewRandomSource creates a seeded generator, seed 0 picks one from the clock
func NewRandomSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// RandomRange draws uniformly from [lo, hi)
func RandomRange(r RandomSource, lo, hi float64) float64 {
	v := lo + (hi-lo)*r.Float64()
	// Rounding can land exactly on hi
	if v >= hi {
		v = math.Nextafter(hi, lo)
	}
	return v
}
