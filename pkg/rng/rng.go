// Package rng wraps math/rand behind a small interface so that every
// generation call owns its random stream and tests can inject a fixed seed.
package rng

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the samplers need.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// New returns a Source seeded with the given value.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewTimeSeeded returns a Source seeded from the wall clock.
func NewTimeSeeded() Source {
	return New(time.Now().UnixNano())
}

// Sample draws k distinct elements from pool, uniformly without replacement.
// When k exceeds the pool size the whole pool is returned in random order.
// The input slice is never mutated.
func Sample(src Source, pool []int, k int) []int {
	if k <= 0 || len(pool) == 0 {
		return nil
	}
	tmp := make([]int, len(pool))
	copy(tmp, pool)
	src.Shuffle(len(tmp), func(i, j int) {
		tmp[i], tmp[j] = tmp[j], tmp[i]
	})
	if k > len(tmp) {
		k = len(tmp)
	}
	return tmp[:k]
}
