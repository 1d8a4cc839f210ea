package generator

import (
	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

// validGame is the acceptance predicate of the rejection loop: ball count,
// distinctness, range, parity band, sum band and fixed-number inclusion all
// have to hold. Pure function, no side effects.
func validGame(cfg config.GameConfig, f model.GenerationFilters, numbers []int) bool {
	if len(numbers) != cfg.BallCount() {
		return false
	}

	seen := make(map[int]bool, len(numbers))
	sum := 0
	evens := 0
	for _, n := range numbers {
		if n < cfg.MinNumber() || n > cfg.MaxNumber() {
			return false
		}
		if seen[n] {
			return false
		}
		seen[n] = true

		sum += n
		if n%2 == 0 {
			evens++
		}
	}

	if evens < f.MinEvens || evens > f.MaxEvens {
		return false
	}
	if sum < f.MinSum || sum > f.MaxSum {
		return false
	}

	for _, fixed := range f.FixedNumbers {
		if !seen[fixed] {
			return false
		}
	}

	return true
}
