package utils

import "math/rand"

// Shuffle permutes items in place with a Fisher-Yates walk, which gives
// every permutation equal probability for an unbiased source. A nil rng
// falls back to the shared source.
func Shuffle[T any](items []T, rng *rand.Rand) {
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	for i := len(items) - 1; i > 0; i-- {
		j := intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
