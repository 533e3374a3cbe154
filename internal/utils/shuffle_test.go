package utils

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffle_PreservesElements(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	Shuffle(items, rng)

	require.Len(t, items, 10)
	seen := make(map[int]bool)
	for _, v := range items {
		seen[v] = true
	}
	assert.Len(t, seen, 10, "shuffle must not drop or duplicate elements")
}

func TestShuffle_Uniformity(t *testing.T) {
	// With 3 elements there are 6 permutations; over many seeded runs
	// each should appear close to 1/6 of the time. A biased swap loop
	// (the classic i..n-1 vs 0..n-1 mistake) fails this comfortably.
	rng := rand.New(rand.NewSource(7))

	const runs = 60000
	counts := make(map[string]int)
	for i := 0; i < runs; i++ {
		items := []int{0, 1, 2}
		Shuffle(items, rng)
		counts[fmt.Sprint(items)]++
	}

	require.Len(t, counts, 6, "all permutations must be reachable")
	expected := runs / 6
	for perm, n := range counts {
		assert.InDeltaf(t, expected, n, float64(expected)*0.05,
			"permutation %s frequency out of tolerance", perm)
	}
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	Shuffle([]string{}, nil)

	one := []string{"only"}
	Shuffle(one, nil)
	assert.Equal(t, []string{"only"}, one)
}
