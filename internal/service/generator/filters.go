package generator

import (
	"fmt"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

// validateFilters rejects malformed filters before any sampling happens.
// Silently accepting a bad filter set would only produce an always-exhausted
// generator, which is much harder to diagnose than an eager error.
func validateFilters(cfg config.GameConfig, f model.GenerationFilters) error {
	if !f.Strategy.Valid() {
		return fmt.Errorf("unknown strategy %q", f.Strategy)
	}

	if f.MinEvens < 0 || f.MaxEvens > cfg.BallCount() || f.MinEvens > f.MaxEvens {
		return fmt.Errorf("even-count bounds %d..%d invalid for %d balls",
			f.MinEvens, f.MaxEvens, cfg.BallCount())
	}

	if f.MinSum > f.MaxSum {
		return fmt.Errorf("sum bounds %d..%d invalid", f.MinSum, f.MaxSum)
	}

	if len(f.FixedNumbers) > cfg.BallCount() {
		return fmt.Errorf("%d fixed numbers exceed %d balls",
			len(f.FixedNumbers), cfg.BallCount())
	}

	seen := make(map[int]bool, len(f.FixedNumbers))
	for _, n := range f.FixedNumbers {
		if n < cfg.MinNumber() || n > cfg.MaxNumber() {
			return fmt.Errorf("fixed number %d out of range %d-%d",
				n, cfg.MinNumber(), cfg.MaxNumber())
		}
		if seen[n] {
			return fmt.Errorf("fixed number %d repeated", n)
		}
		seen[n] = true
	}

	return nil
}
