package generator

import "math/rand/v2"

// Source is the randomness a Generator draws from. Passing it explicitly
// keeps generation reproducible and avoids lock contention on the global
// rand source. Implementations need not be safe for concurrent use.
type Source interface {
	// IntRange returns a uniform integer in [lo, hi], both ends inclusive.
	IntRange(lo, hi int) int

	// Bool returns true or false with equal probability.
	Bool() bool
}

// RandSource is a Source backed by a seeded PCG generator.
type RandSource struct {
	rand *rand.Rand
	seed uint64
}

// NewSource returns a deterministic Source. Equal seeds yield equal streams;
// 0 is an ordinary seed.
func NewSource(seed uint64) *RandSource {
	return &RandSource{
		rand: rand.New(rand.NewPCG(seed, seed)),
		seed: seed,
	}
}

// NewRandomSource returns a Source seeded from the runtime's entropy.
// Use Seed to record the value for later reproduction.
func NewRandomSource() *RandSource {
	return NewSource(rand.Uint64())
}

// Seed returns the seed the source was created with.
func (s *RandSource) Seed() uint64 {
	return s.seed
}

func (s *RandSource) IntRange(lo, hi int) int {
	return lo + s.rand.IntN(hi-lo+1)
}

func (s *RandSource) Bool() bool {
	return s.rand.IntN(2) == 1
}
