// Package randutil derives reproducible random sources from integer seeds.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns the seed for the n-th independent stream under a base seed,
// so that simulated game n replays identically regardless of worker scheduling.
func Derive(base int64, n int) int64 {
	return int64(mix(uint64(base) + uint64(n+1)*goldenRatio64))
}

// SeedFromClock picks a seed when the caller did not configure one.
func SeedFromClock(clock quartz.Clock) int64 {
	return clock.Now().UnixNano()
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
