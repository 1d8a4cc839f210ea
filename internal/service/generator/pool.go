package generator

import (
	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

// buildPool computes the numbers eligible for random selection. Exclusion
// rules never touch fixed numbers: they constrain only the complementary
// picks, so every fixed number is re-inserted at the end. The pool may end up
// smaller than the ball count; that is detected during generation.
func buildPool(cfg config.GameConfig, hctx model.HistoricalContext, f model.GenerationFilters) []int {
	fixed := model.NewNumberSet(f.FixedNumbers)

	pool := make([]int, 0, cfg.MaxNumber()-cfg.MinNumber()+1)
	for n := cfg.MinNumber(); n <= cfg.MaxNumber(); n++ {
		if fixed[n] {
			pool = append(pool, n)
			continue
		}
		if f.ExcludeLastDraw && hctx.LastDraw[n] {
			continue
		}
		if f.ExcludeMostDrawn && hctx.TopDrawn[n] {
			continue
		}
		pool = append(pool, n)
	}

	return pool
}
