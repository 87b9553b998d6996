package treap

import (
	xxhash "github.com/cespare/xxhash/v2"
)

// DefaultSeed is the seed used by the convenience constructors (New,
// Singleton, FromItems). A fixed seed keeps tree shapes reproducible across
// runs; callers that want different shapes per run derive their own seed
// and pass it through NewGenerator.
const DefaultSeed uint64 = 0

// SplitMix64 constants: Weyl sequence increment and the two finalizer
// multipliers.
const (
	generatorGamma = 0x9e3779b97f4a7c15
	generatorMix1  = 0xbf58476d1ce4e5b9
	generatorMix2  = 0x94d049bb133111eb
)

// Generator is an immutable pseudo-random generator state. Next never
// updates the receiver: it returns the drawn value together with the
// successor state, and the caller must carry the successor forward. Two
// generators built from the same seed therefore always produce the same
// sequence of draws, which is what makes treap shapes reproducible.
//
// The zero Generator is valid and identical to NewGenerator(0).
type Generator struct {
	state uint64
}

// NewGenerator returns a generator state deterministically derived from
// seed.
func NewGenerator(seed uint64) Generator {
	return Generator{state: seed}
}

// SeedString returns a generator seeded from the xxhash digest of s.
// Useful when the natural seed is a name rather than a number.
func SeedString(s string) Generator {
	return NewGenerator(xxhash.Sum64String(s))
}

// Next draws one value and returns it together with the successor state.
//
// The algorithm is SplitMix64: the state walks a Weyl sequence and the
// output is a bijective finalizer over the advanced state, so the sequence
// has full 2^64 period and distinct states never collide on output.
func (g Generator) Next() (uint64, Generator) {
	state := g.state + generatorGamma

	z := state
	z ^= z >> 30
	z *= generatorMix1
	z ^= z >> 27
	z *= generatorMix2
	z ^= z >> 31

	return z, Generator{state: state}
}
