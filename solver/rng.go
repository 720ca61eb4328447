// Package solver - RNG utilities for the retry policy.
//
// This file centralizes deterministic random generation for reseeding.
//
// Goals:
//   - Determinism: same policy seed ⇒ identical reseed sequence across
//     platforms; no time-based sources hidden anywhere.
//   - Encapsulation: a single RNG factory; every policy owns its generator
//     instead of sharing a process-wide one.
//   - Safety: no panics or logging here; pure helpers.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A policy's RNG is owned by that
//     policy; callers offloading Run to a goroutine serialize access.
package solver

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style avalanche finalizer, so that small input
// changes produce large, well-distributed output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 multipliers/finalizer; see Vigna 2014 for the constants.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
