// Package tsp - RNG utilities for the genetic solver and batch solving.
//
// Every solve owns its *rand.Rand; nothing here touches the global source.
// math/rand.Rand is NOT goroutine-safe, so a stream is never shared across
// goroutines: SolveAll derives one stream per request with deriveSeed.
package tsp

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// (SplitMix64 finalizer), so sibling streams are decorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// shuffleInts performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInts(a []int, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// randomFixedStart fills dst (len n) with 0 followed by a uniformly random
// permutation of 1..n-1.
func randomFixedStart(dst []int, rng *rand.Rand) {
	var i int
	for i = range dst {
		dst[i] = i
	}
	if len(dst) > 2 {
		shuffleInts(dst[1:], rng)
	}
}
