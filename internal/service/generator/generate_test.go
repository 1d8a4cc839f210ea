package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
	"lotostats_backend/pkg/rng"
)

// testGame is a minimal GameConfig for tests.
type testGame struct {
	balls, min, max int
}

func (g testGame) Name() string             { return "Test Game" }
func (g testGame) Slug() string             { return "test_game" }
func (g testGame) APISlug() string          { return "testgame" }
func (g testGame) BallCount() int           { return g.balls }
func (g testGame) MinNumber() int           { return g.min }
func (g testGame) MaxNumber() int           { return g.max }
func (g testGame) TotalCombinations() int64 { return 0 }

var megaSena config.GameConfig = testGame{balls: 6, min: 1, max: 60}

func seededService() *serv {
	return &serv{newSource: func() rng.Source { return rng.New(42) }}
}

func wideFilters() model.GenerationFilters {
	return model.GenerationFilters{
		MinEvens: 0,
		MaxEvens: 6,
		MinSum:   21,
		MaxSum:   345,
		Strategy: model.StrategyRandom,
	}
}

func assertValid(t *testing.T, cfg config.GameConfig, f model.GenerationFilters, g model.GeneratedGame) {
	t.Helper()

	require.Len(t, g.Numbers, cfg.BallCount())

	seen := map[int]bool{}
	sum := 0
	evens := 0
	for _, n := range g.Numbers {
		assert.GreaterOrEqual(t, n, cfg.MinNumber())
		assert.LessOrEqual(t, n, cfg.MaxNumber())
		assert.False(t, seen[n], "duplicate number %d", n)
		seen[n] = true
		sum += n
		if n%2 == 0 {
			evens++
		}
	}

	assert.Equal(t, sum, g.SumValue)
	assert.Equal(t, evens, g.EvenCount)
	assert.Equal(t, cfg.BallCount()-evens, g.OddCount)
	assert.GreaterOrEqual(t, evens, f.MinEvens)
	assert.LessOrEqual(t, evens, f.MaxEvens)
	assert.GreaterOrEqual(t, sum, f.MinSum)
	assert.LessOrEqual(t, sum, f.MaxSum)
	for _, fixed := range f.FixedNumbers {
		assert.True(t, seen[fixed], "fixed number %d missing", fixed)
	}
	assert.GreaterOrEqual(t, g.CompatibilityScore, 0.0)
	assert.LessOrEqual(t, g.CompatibilityScore, 100.0)
}

func TestGenerateEmptyHistoryReturnsRequestedCount(t *testing.T) {
	s := seededService()
	hctx := model.EmptyContext(megaSena.BallCount())

	games, err := s.Generate(context.Background(), megaSena, hctx, wideFilters(), 5, false)
	require.NoError(t, err)
	require.Len(t, games, 5)

	for _, g := range games {
		assertValid(t, megaSena, wideFilters(), g)
	}
}

func TestGenerateBatchUniqueness(t *testing.T) {
	// 2-of-4 admits exactly six distinct combinations.
	tiny := testGame{balls: 2, min: 1, max: 4}
	f := model.GenerationFilters{MaxEvens: 2, MaxSum: 100, Strategy: model.StrategyRandom}

	s := seededService()
	games, err := s.Generate(context.Background(), tiny, model.EmptyContext(2), f, 6, false)
	require.NoError(t, err)
	require.Len(t, games, 6)

	keys := map[string]bool{}
	for _, g := range games {
		key := comboKey(g.Numbers)
		assert.False(t, keys[key], "combination %s repeated", key)
		keys[key] = true
	}

	// Asking for more than exists yields a partial batch, not an error.
	games, err = s.Generate(context.Background(), tiny, model.EmptyContext(2), f, 10, false)
	require.NoError(t, err)
	assert.Len(t, games, 6)
}

func TestGenerateAllowDuplicates(t *testing.T) {
	tiny := testGame{balls: 2, min: 1, max: 4}
	f := model.GenerationFilters{MaxEvens: 2, MaxSum: 100, Strategy: model.StrategyRandom}

	s := seededService()
	games, err := s.Generate(context.Background(), tiny, model.EmptyContext(2), f, 20, true)
	require.NoError(t, err)
	assert.Len(t, games, 20)
}

func TestGenerateImpossibleSumDegradesToEmpty(t *testing.T) {
	f := wideFilters()
	f.MinSum = 1
	f.MaxSum = 1

	s := seededService()
	games, err := s.Generate(context.Background(), megaSena, model.EmptyContext(6), f, 10, false)
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestGenerateSingleAdmissibleCombination(t *testing.T) {
	// Sum 21 with six distinct numbers >= 1 forces exactly 1..6, so a
	// batch of two can never complete.
	f := wideFilters()
	f.MinSum = 21
	f.MaxSum = 21

	s := seededService()
	games, err := s.Generate(context.Background(), megaSena, model.EmptyContext(6), f, 2, false)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(games), 1)
	for _, g := range games {
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, g.Numbers)
	}
}

func TestFixedNumbersSurviveExclusions(t *testing.T) {
	hctx := model.EmptyContext(6)
	hctx.TopDrawn = model.NewNumberSet([]int{7, 13, 1, 2, 3, 4, 5, 6, 8, 9})

	f := wideFilters()
	f.ExcludeMostDrawn = true
	f.FixedNumbers = []int{7, 13}

	s := seededService()
	games, err := s.Generate(context.Background(), megaSena, hctx, f, 5, false)
	require.NoError(t, err)
	require.NotEmpty(t, games)

	for _, g := range games {
		assertValid(t, megaSena, f, g)
		assert.Contains(t, g.Numbers, 7)
		assert.Contains(t, g.Numbers, 13)
		// Non-fixed top-drawn numbers stay excluded.
		for _, n := range g.Numbers {
			if n != 7 && n != 13 {
				assert.False(t, hctx.TopDrawn[n], "excluded number %d selected", n)
			}
		}
	}
}

func TestPoolUnderflowExhausts(t *testing.T) {
	// Lotofácil-like: removing the 15 last-draw numbers from 1..25 leaves
	// only 10 eligible numbers for a 15-ball game.
	lotofacil := testGame{balls: 15, min: 1, max: 25}

	hctx := model.EmptyContext(15)
	last := make([]int, 0, 15)
	for n := 1; n <= 15; n++ {
		last = append(last, n)
	}
	hctx.LastDraw = model.NewNumberSet(last)

	f := model.GenerationFilters{
		ExcludeLastDraw: true,
		MaxEvens:        15,
		MaxSum:          1000,
		Strategy:        model.StrategyRandom,
	}

	s := seededService()
	games, err := s.Generate(context.Background(), lotofacil, hctx, f, 3, false)
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestGenerateRejectsInvalidFilters(t *testing.T) {
	s := seededService()
	hctx := model.EmptyContext(6)

	cases := map[string]model.GenerationFilters{
		"evens inverted":   {MinEvens: 4, MaxEvens: 2, MaxSum: 345, Strategy: model.StrategyRandom},
		"evens above":      {MaxEvens: 7, MaxSum: 345, Strategy: model.StrategyRandom},
		"sum inverted":     {MaxEvens: 6, MinSum: 300, MaxSum: 100, Strategy: model.StrategyRandom},
		"fixed range":      {MaxEvens: 6, MaxSum: 345, FixedNumbers: []int{0}, Strategy: model.StrategyRandom},
		"fixed duplicated": {MaxEvens: 6, MaxSum: 345, FixedNumbers: []int{5, 5}, Strategy: model.StrategyRandom},
		"too many fixed":   {MaxEvens: 6, MaxSum: 345, FixedNumbers: []int{1, 2, 3, 4, 5, 6, 7}, Strategy: model.StrategyRandom},
		"bad strategy":     {MaxEvens: 6, MaxSum: 345, Strategy: model.Strategy("lucky")},
	}

	for name, f := range cases {
		_, err := s.Generate(context.Background(), megaSena, hctx, f, 1, false)
		assert.Error(t, err, name)
	}
}

func TestGenerateHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := seededService()
	games, err := s.Generate(ctx, megaSena, model.EmptyContext(6), wideFilters(), 5, false)
	assert.Error(t, err)
	assert.Empty(t, games)
}
