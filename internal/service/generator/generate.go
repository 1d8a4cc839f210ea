package generator

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
	"lotostats_backend/pkg/rng"
)

// Generate produces up to count unique combinations. Each call owns its
// random source and treats hctx as read-only, so concurrent calls need no
// locking. Exhausting the attempt budget yields a shorter batch, which the
// caller reports as a warning, not a failure.
func (s *serv) Generate(ctx context.Context, cfg config.GameConfig, hctx model.HistoricalContext,
	filters model.GenerationFilters, count int, allowDuplicates bool) ([]model.GeneratedGame, error) {

	if count <= 0 {
		return nil, fmt.Errorf("game count must be positive")
	}
	if err := validateFilters(cfg, filters); err != nil {
		return nil, fmt.Errorf("invalid filters: %w", err)
	}

	src := s.newSource()
	pool := buildPool(cfg, hctx, filters)

	games := make([]model.GeneratedGame, 0, count)
	seen := make(map[string]bool, count)

	maxTotalAttempts := count * maxAttemptsPerGame
	for attempts := 0; len(games) < count && attempts < maxTotalAttempts; attempts++ {
		// Tight filters on small ranges can make this loop long; honor
		// cancellation between games.
		if err := ctx.Err(); err != nil {
			return games, err
		}

		game := s.generateSingle(src, cfg, hctx, filters, pool)
		if game == nil {
			continue
		}

		key := comboKey(game.Numbers)
		if !allowDuplicates && seen[key] {
			continue
		}
		seen[key] = true
		games = append(games, *game)
	}

	return games, nil
}

// generateSingle runs the rejection loop for one combination: seed with the
// fixed numbers, draw the remainder via the strategy, validate, retry. A pool
// smaller than the ball count can never succeed, so it fails without looping.
// Returns nil when the attempt budget is exhausted.
func (s *serv) generateSingle(src rng.Source, cfg config.GameConfig, hctx model.HistoricalContext,
	f model.GenerationFilters, pool []int) *model.GeneratedGame {

	if len(pool) < cfg.BallCount() {
		return nil
	}

	needed := cfg.BallCount() - len(f.FixedNumbers)
	available := without(pool, f.FixedNumbers)
	if len(available) < needed {
		// The pool is fixed for the whole call; retrying cannot help.
		return nil
	}

	for attempt := 0; attempt < maxAttemptsPerGame; attempt++ {
		numbers := append([]int(nil), f.FixedNumbers...)

		if needed > 0 {
			selected := pick(src, available, needed, f.Strategy, hctx)
			if len(selected) < needed {
				continue
			}
			numbers = append(numbers, selected...)
		}

		if validGame(cfg, f, numbers) {
			return newGame(cfg, hctx, numbers)
		}
	}

	return nil
}

// newGame assembles the immutable result record. Only combinations that
// passed validGame reach this point.
func newGame(cfg config.GameConfig, hctx model.HistoricalContext, numbers []int) *model.GeneratedGame {
	sorted := append([]int(nil), numbers...)
	sort.Ints(sorted)

	sum := 0
	evens := 0
	delayed := 0
	hot := 0
	cold := 0
	for _, n := range sorted {
		sum += n
		if n%2 == 0 {
			evens++
		}
		if hctx.DelayedNumbers[n] {
			delayed++
		}
		if hctx.HotNumbers[n] {
			hot++
		}
		if hctx.ColdNumbers[n] {
			cold++
		}
	}

	return &model.GeneratedGame{
		Numbers:            sorted,
		SumValue:           sum,
		EvenCount:          evens,
		OddCount:           cfg.BallCount() - evens,
		DelayedCount:       delayed,
		HotCount:           hot,
		ColdCount:          cold,
		CompatibilityScore: score(cfg.BallCount(), hctx, sorted),
		GameSlug:           cfg.Slug(),
	}
}

// comboKey is the batch-uniqueness identity of a combination.
func comboKey(sortedNumbers []int) string {
	var b strings.Builder
	for i, n := range sortedNumbers {
		if i > 0 {
			b.WriteByte('-')
		}
		fmt.Fprintf(&b, "%d", n)
	}
	return b.String()
}
