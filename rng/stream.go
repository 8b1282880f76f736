// Package rng provides the seeded random stream shared by level generation
// and spawning.
package rng

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// Source is the subset of a random stream consumed by generators and
// spawners. Tests substitute scripted implementations.
type Source interface {
	Float64() float64
	IntRange(lo, hi int) int
}

// Stream is a deterministic PCG stream seeded from a string.
type Stream struct {
	seed string
	r    *rand.Rand
}

// New returns a stream whose sequence depends only on seed.
func New(seed string) *Stream {
	h := xxhash.Sum64String(seed)
	return &Stream{
		seed: seed,
		r:    rand.New(rand.NewPCG(h, h^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the string the stream was created with.
func (s *Stream) Seed() string {
	return s.seed
}

// Float64 returns a value in [0,1).
func (s *Stream) Float64() float64 {
	return s.r.Float64()
}

// IntRange returns a uniform integer in [lo, hi]. An empty range yields lo.
func (s *Stream) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}
