// Package shuffle provides a seedable Fisher–Yates shuffle shared by option
// ordering and question ordering.
package shuffle

import "math/rand/v2"

// New returns a random source. A zero seed draws a fresh seed from the
// runtime's global generator.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Slice permutes items in place, uniformly over all orderings.
func Slice[T any](rng *rand.Rand, items []T) {
	if rng == nil {
		rng = New(0)
	}
	for i := len(items) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
