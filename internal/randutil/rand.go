// Package randutil derives reproducible random sources for board layouts.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words are derived from the one seed so that a layout can be
// replayed from the number printed in the logs.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Resolve returns a generator for seed, or for the clock's current time when
// seed is nil. The seed actually used is returned for logging.
func Resolve(seed *int64, clock quartz.Clock) (*rand.Rand, int64) {
	if seed != nil {
		return New(*seed), *seed
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	s := clock.Now().UnixNano()
	return New(s), s
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
