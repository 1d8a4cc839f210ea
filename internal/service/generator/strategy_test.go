package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotostats_backend/internal/model"
	"lotostats_backend/pkg/rng"
)

func classifiedContext() model.HistoricalContext {
	hctx := model.EmptyContext(6)
	hctx.HotNumbers = model.NewNumberSet([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	hctx.ColdNumbers = model.NewNumberSet([]int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20})
	hctx.DelayedNumbers = model.NewNumberSet([]int{22, 24, 26, 28, 30})
	return hctx
}

func TestBalancedStrategyTargetsHotColdSplit(t *testing.T) {
	hctx := classifiedContext()
	f := wideFilters()
	f.Strategy = model.StrategyBalanced

	s := seededService()
	games, err := s.Generate(context.Background(), megaSena, hctx, f, 10, false)
	require.NoError(t, err)
	require.Len(t, games, 10)

	// Both subsets are large enough, so every game hits the 3/3 target.
	for _, g := range games {
		assertValid(t, megaSena, f, g)
		assert.Equal(t, 3, g.HotCount)
		assert.Equal(t, 3, g.ColdCount)
	}
}

func TestBalancedStrategyFillsShortfallFromNeutral(t *testing.T) {
	hctx := model.EmptyContext(6)
	hctx.HotNumbers = model.NewNumberSet([]int{1})
	hctx.ColdNumbers = model.NewNumberSet([]int{2})

	f := wideFilters()
	f.Strategy = model.StrategyBalanced

	s := seededService()
	games, err := s.Generate(context.Background(), megaSena, hctx, f, 5, false)
	require.NoError(t, err)
	require.Len(t, games, 5)

	for _, g := range games {
		assertValid(t, megaSena, f, g)
	}
}

func TestContrarianStrategyPrefersDelayed(t *testing.T) {
	hctx := classifiedContext()
	f := wideFilters()
	f.Strategy = model.StrategyContrarian

	s := seededService()
	games, err := s.Generate(context.Background(), megaSena, hctx, f, 10, false)
	require.NoError(t, err)
	require.Len(t, games, 10)

	// Target is 2/3 of six picks and the delayed pool holds five numbers,
	// so exactly four delayed numbers land in every game.
	for _, g := range games {
		assertValid(t, megaSena, f, g)
		assert.Equal(t, 4, g.DelayedCount)
	}
}

func TestContrarianStrategyWithoutDelayedNumbers(t *testing.T) {
	f := wideFilters()
	f.Strategy = model.StrategyContrarian

	s := seededService()
	games, err := s.Generate(context.Background(), megaSena, model.EmptyContext(6), f, 5, false)
	require.NoError(t, err)
	require.Len(t, games, 5)

	for _, g := range games {
		assertValid(t, megaSena, f, g)
		assert.Zero(t, g.DelayedCount)
	}
}

func TestPickNeverRepeatsOrLeavesPool(t *testing.T) {
	hctx := classifiedContext()
	pool := []int{1, 2, 3, 11, 12, 13, 22, 24, 40, 41}
	poolSet := model.NewNumberSet(pool)
	src := rng.New(7)

	for _, strategy := range []model.Strategy{model.StrategyRandom, model.StrategyBalanced, model.StrategyContrarian} {
		for needed := 1; needed <= len(pool); needed++ {
			picked := pick(src, pool, needed, strategy, hctx)
			require.Len(t, picked, needed, "strategy %s needed %d", strategy, needed)

			seen := map[int]bool{}
			for _, n := range picked {
				assert.True(t, poolSet[n], "strategy %s picked %d outside pool", strategy, n)
				assert.False(t, seen[n], "strategy %s repeated %d", strategy, n)
				seen[n] = true
			}
		}
	}
}

func TestSampleIsBoundedByPool(t *testing.T) {
	src := rng.New(1)
	pool := []int{5, 6, 7}

	assert.Len(t, rng.Sample(src, pool, 2), 2)
	assert.Len(t, rng.Sample(src, pool, 10), 3)
	assert.Nil(t, rng.Sample(src, pool, 0))
	assert.Nil(t, rng.Sample(src, nil, 3))
	// Input slice stays untouched.
	assert.Equal(t, []int{5, 6, 7}, pool)
}
