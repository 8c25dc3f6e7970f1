package rng

import (
	"fmt"
	"math/rand"
)

// Source is the single random stream shared by every operator in a run.
// It is not safe for concurrent use.
type Source struct {
	seed int64
	r    *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed int64) *Source {
	return &Source{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 { return s.seed }

// Float64 returns a uniform draw in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Uniform returns a uniform draw in [lo, hi]. lo and hi must be finite.
func (s *Source) Uniform(lo, hi float64) float64 {
	if lo == hi {
		return lo
	}
	// Interpolating avoids hi-lo overflowing for ranges wider than MaxFloat64.
	u := s.r.Float64()
	v := lo*(1-u) + hi*u
	return min(max(v, lo), hi)
}

// IntRange returns a uniform integer in [lo, hi], inclusive on both ends.
// It panics if hi < lo.
func (s *Source) IntRange(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("rng: empty range [%d, %d]", lo, hi))
	}
	return lo + s.r.Intn(hi-lo+1)
}
