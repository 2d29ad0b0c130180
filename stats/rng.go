// SPDX-License-Identifier: MIT
// Package: relnet/stats
//
// rng.go — seeded generators for the permutation and bootstrap routines.
//
// Every randomized routine takes a *rand.Rand built here, never a time-based
// source, so a seed reproduces a run bit for bit. A *rand.Rand is not safe
// for concurrent use: one generator per goroutine or per substream.
//
// Substreams: a run that draws one null distribution per stored matrix takes
// a single parent seed from its generator and gives matrix i the stream
// DeriveRand(parent, i). Matrix i then sees the same draws whatever precedes
// it in the stack.

package stats

import "math/rand"

// DefaultSeed replaces a zero seed.
const DefaultSeed int64 = 1

// NewRand returns a generator seeded with seed, or DefaultSeed when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// SplitMix64 increment and finalizer multipliers.
const (
	golden = 0x9e3779b97f4a7c15
	mixA   = 0xbf58476d1ce4e5b9
	mixB   = 0x94d049bb133111eb
)

// DeriveSeed maps (parent, stream) to a well-spread child seed through the
// SplitMix64 finalizer; nearby streams give unrelated seeds.
func DeriveSeed(parent int64, stream uint64) int64 {
	z := uint64(parent) + (stream+1)*golden
	z = (z ^ (z >> 30)) * mixA
	z = (z ^ (z >> 27)) * mixB

	return int64(z ^ (z >> 31))
}

// DeriveRand returns the generator of substream stream under parent.
// The same pair always yields the same sequence.
func DeriveRand(parent int64, stream uint64) *rand.Rand {
	return NewRand(DeriveSeed(parent, stream))
}

// ShuffleInts permutes a in place (Fisher–Yates); rng == nil uses DefaultSeed.
func ShuffleInts(a []int, rng *rand.Rand) {
	if rng == nil {
		rng = NewRand(0)
	}
	rng.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
}

// Perm returns a random ordering of 0..n-1, empty for n <= 0.
func Perm(n int, rng *rand.Rand) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	ShuffleInts(p, rng)

	return p
}

// Resample draws n indices from 0..n-1 with replacement.
func Resample(n int, rng *rand.Rand) []int {
	if rng == nil {
		rng = NewRand(0)
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = rng.Intn(n)
	}

	return idx
}
