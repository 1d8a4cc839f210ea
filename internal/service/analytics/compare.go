package analytics

import (
	"context"
	"fmt"
	"sort"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

// Compare relates a user combination to the stored history: exact repeats,
// near misses, and an originality percentage. Descriptive only.
func (s *serv) Compare(ctx context.Context, cfg config.GameConfig, numbers []int) (*model.GameComparison, error) {
	if len(numbers) != cfg.BallCount() {
		return nil, fmt.Errorf("expected %d numbers, got %d", cfg.BallCount(), len(numbers))
	}
	seen := make(model.NumberSet, len(numbers))
	for _, n := range numbers {
		if n < cfg.MinNumber() || n > cfg.MaxNumber() {
			return nil, fmt.Errorf("number %d outside range %d..%d", n, cfg.MinNumber(), cfg.MaxNumber())
		}
		if seen[n] {
			return nil, fmt.Errorf("number %d repeated", n)
		}
		seen[n] = true
	}

	draws, err := s.repo.ListByGame(ctx, cfg.Slug())
	if err != nil {
		return nil, err
	}

	sorted := append([]int(nil), numbers...)
	sort.Ints(sorted)

	cmp := &model.GameComparison{Numbers: sorted}
	evens := 0
	for _, n := range sorted {
		cmp.Sum += n
		if n%2 == 0 {
			evens++
		}
	}
	cmp.EvenCount = evens
	cmp.OddCount = cfg.BallCount() - evens

	for _, d := range draws {
		matched := 0
		for _, n := range d.Numbers {
			if seen[n] {
				matched++
			}
		}
		switch cfg.BallCount() - matched {
		case 0:
			cmp.ExactMatches++
		case 1:
			cmp.NearMatches++
		case 2:
			cmp.GoodMatches++
		}
	}

	if len(draws) > 0 {
		resembling := cmp.ExactMatches + cmp.NearMatches + cmp.GoodMatches
		cmp.Originality = (1 - float64(resembling)/float64(len(draws))) * 100
	} else {
		cmp.Originality = 100
	}

	return cmp, nil
}
