// Package shuffle provides the randomized permutation used when building
// test sessions.
package shuffle

import (
	"math/rand"
	"time"
)

// Source yields uniform random ints in [0, n). *rand.Rand satisfies it,
// and tests can inject a seeded or scripted source.
type Source interface {
	Intn(n int) int
}

// NewSource returns a time-seeded Source for production use.
func NewSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Slice returns a new slice holding the same elements as in, in a uniformly
// random permutation. The input is left unmodified. This is Fisher-Yates:
// walking from the last index down, each element swaps with a uniformly
// chosen earlier (or same) position, which gives an unbiased permutation
// in linear time.
func Slice[T any](src Source, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
