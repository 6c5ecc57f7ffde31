package hypergrasp

import (
	"math/rand"
	"time"
)

// RNG is the random source threaded through candidate selection and local
// search. A single process-wide generator is seeded once at the start of
// Solve and passed down explicitly, rather than relying on package-level
// global state (DESIGN NOTES: make the seed an explicit parameter).
type RNG = *rand.Rand

// newRNG creates a PRNG from seed, or from the wall clock when seed is nil.
func newRNG(seed *int64) (RNG, int64) {
	s := seed
	var actual int64
	if s == nil {
		actual = time.Now().UnixNano()
	} else {
		actual = *s
	}
	return rand.New(rand.NewSource(actual)), actual
}

// shuffleInt32 shuffles a []int32 in place using the Fisher-Yates algorithm
// via rng, mirroring the teacher's habit (helpers.go) of small rng-backed
// utility functions used throughout the construction/local-search hot path.
func shuffleInt32(s []int32, rng RNG) {
	rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// shuffleInts shuffles a []int in place, used for index permutations where
// int32 item/edge identifiers don't apply (e.g. flattened swap-pair indices).
func shuffleInts(s []int, rng RNG) {
	rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
