package domain

import (
	"math/rand/v2"
	"slices"
)

// RandomPermutation draws every integer in [0, n) exactly once with a
// shrinking-pool shuffle: pick a uniformly random remaining element, remove
// it, repeat until the pool is empty.
func RandomPermutation(r *rand.Rand, n int) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}

	drawn := make([]int, 0, n)
	for len(pool) > 0 {
		i := r.IntN(len(pool))
		drawn = append(drawn, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	return drawn
}

// BuildDeck deals the initial pile from one permutation of
// [0, uniques+sum(groups)). The first uniques drawn values keep their random
// order and form the tail of the deck. Each group then takes the next chunk
// of drawn values, sorted ascending to model a block of cards that is already
// internally ordered, and is prepended in front of the sequence built so far.
func BuildDeck(r *rand.Rand, uniques int, groups []int) StreakArray {
	total := uniques
	for _, g := range groups {
		total += g
	}

	perm := RandomPermutation(r, total)
	values := slices.Clone(perm[:uniques])

	next := uniques
	for _, g := range groups {
		block := slices.Clone(perm[next : next+g])
		next += g
		slices.Sort(block)
		values = append(block, values...)
	}

	return FromValues(values)
}
