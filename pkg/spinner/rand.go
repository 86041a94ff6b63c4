package spinner

import "math/rand"

// nextSeed advances the Park-Miller multiplicative LCG by one step. Both
// input and output lie in [1, lcgModulus-1]; callers thread the returned
// state forward explicitly.
func nextSeed(s int64) int64 {
	return s * lcgMultiplier % lcgModulus
}

// normalizeSeed maps an arbitrary int64 into the generator's valid state
// range so queue constructors accept any caller-supplied seed.
func normalizeSeed(s int64) int64 {
	s %= lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	if s == 0 {
		s = 1
	}
	return s
}

// randomSeed draws a fresh generator state from the process-global source.
// This is the kernel's only non-deterministic entry point.
func randomSeed() int64 {
	return rand.Int63n(lcgModulus-1) + 1
}

const (
	lcgMultiplier = 16807
	lcgModulus    = 2147483647
)
