package utils

import "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// NewRand returns a *rand.Rand seeded deterministically from seed. Every
// random choice in the module (dealing, successor sampling, tie breaks) goes
// through a generator made here.
func NewRand(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Split derives an independent generator from rng, for handing to a worker.
func Split(rng *rand.Rand) *rand.Rand {
	return rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
