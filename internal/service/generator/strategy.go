package generator

import (
	"lotostats_backend/internal/model"
	"lotostats_backend/pkg/rng"
)

// pick draws needed distinct numbers from the pool according to the strategy.
// Every path returns numbers from the pool only and never repeats one; when
// the pool is too small the result is simply shorter and the caller fails the
// attempt.
func pick(src rng.Source, pool []int, needed int, strategy model.Strategy, hctx model.HistoricalContext) []int {
	switch strategy {
	case model.StrategyBalanced:
		return pickBalanced(src, pool, needed, hctx)
	case model.StrategyContrarian:
		return pickContrarian(src, pool, needed, hctx)
	default:
		return rng.Sample(src, pool, needed)
	}
}

// pickBalanced targets half the picks from hot numbers and the rest from cold
// ones. Undersized subsets spill into neutral numbers first, then into
// whatever remains of the pool. The 50/50 split is a target, never a
// guarantee.
func pickBalanced(src rng.Source, pool []int, needed int, hctx model.HistoricalContext) []int {
	var hotPool, coldPool, neutralPool []int
	for _, n := range pool {
		switch {
		case hctx.HotNumbers[n]:
			hotPool = append(hotPool, n)
		case hctx.ColdNumbers[n]:
			coldPool = append(coldPool, n)
		default:
			neutralPool = append(neutralPool, n)
		}
	}

	hotNeeded := needed / 2
	coldNeeded := needed - hotNeeded

	selected := rng.Sample(src, hotPool, hotNeeded)
	selected = append(selected, rng.Sample(src, coldPool, coldNeeded)...)

	if remaining := needed - len(selected); remaining > 0 {
		selected = append(selected, rng.Sample(src, neutralPool, remaining)...)
	}
	if remaining := needed - len(selected); remaining > 0 {
		selected = append(selected, rng.Sample(src, without(pool, selected), remaining)...)
	}

	return selected
}

// pickContrarian favors overdue numbers, taking up to two thirds of the picks
// from the delayed set and topping up from the rest of the pool.
func pickContrarian(src rng.Source, pool []int, needed int, hctx model.HistoricalContext) []int {
	var delayedPool, otherPool []int
	for _, n := range pool {
		if hctx.DelayedNumbers[n] {
			delayedPool = append(delayedPool, n)
		} else {
			otherPool = append(otherPool, n)
		}
	}

	delayedTarget := needed * contrarianDelayedNum / contrarianDelayedDen
	if delayedTarget > needed {
		delayedTarget = needed
	}

	selected := rng.Sample(src, delayedPool, delayedTarget)
	if remaining := needed - len(selected); remaining > 0 {
		selected = append(selected, rng.Sample(src, otherPool, remaining)...)
	}

	return selected
}

// without filters excluded numbers out of pool.
func without(pool, excluded []int) []int {
	skip := model.NewNumberSet(excluded)
	out := make([]int, 0, len(pool))
	for _, n := range pool {
		if !skip[n] {
			out = append(out, n)
		}
	}
	return out
}
