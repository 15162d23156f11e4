package dist

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source supplies the two primitive draws the sampler needs.
// *rand.Rand from golang.org/x/exp/rand and math/rand both satisfy it.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64

	// NormFloat64 returns a standard normal draw.
	NormFloat64() float64
}

// NewSource returns a deterministic generator for the given seed.
// The generator is backed by a locked source and is safe for concurrent use.
func NewSource(seed uint64) *rand.Rand {
	var src rand.LockedSource
	src.Seed(seed)
	return rand.New(&src)
}

// NewTimeSeededSource returns a generator seeded from the wall clock.
func NewTimeSeededSource() *rand.Rand {
	return NewSource(uint64(time.Now().UnixNano()))
}
