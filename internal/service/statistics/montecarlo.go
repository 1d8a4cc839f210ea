package statistics

import (
	"context"
	"fmt"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
	"lotostats_backend/pkg/rng"
)

const (
	defaultSimulations = 10000
	maxSimulations     = 1000000
)

// MonteCarlo plays the latest draw against many random tickets and reports how
// the matches distribute. The point is to make the real odds tangible.
func (s *serv) MonteCarlo(ctx context.Context, cfg config.GameConfig, simulations int) (*model.MonteCarloResult, error) {
	if simulations <= 0 {
		simulations = defaultSimulations
	}
	if simulations > maxSimulations {
		return nil, fmt.Errorf("simulations capped at %d, got %d", maxSimulations, simulations)
	}

	draws, err := s.repo.ListRecent(ctx, cfg.Slug(), 1)
	if err != nil {
		return nil, err
	}
	if len(draws) == 0 {
		return nil, fmt.Errorf("no stored draws for %s", cfg.Slug())
	}

	winning := model.NewNumberSet(draws[0].Numbers)
	pool := make([]int, 0, cfg.MaxNumber()-cfg.MinNumber()+1)
	for n := cfg.MinNumber(); n <= cfg.MaxNumber(); n++ {
		pool = append(pool, n)
	}

	src := s.newSource()
	res := &model.MonteCarloResult{
		Simulations:       simulations,
		TotalCombinations: cfg.TotalCombinations(),
	}

	for i := 0; i < simulations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		matches := 0
		for _, n := range rng.Sample(src, pool, cfg.BallCount()) {
			if winning[n] {
				matches++
			}
		}

		switch {
		case matches == 0:
			res.NoMatches++
		case matches == cfg.BallCount():
			res.FullMatches++
		case matches == cfg.BallCount()-1:
			res.OneOffMatches++
		case matches == cfg.BallCount()-2:
			res.TwoOffMatches++
		case matches == cfg.BallCount()-3:
			res.ThreeOffMatches++
		default:
			res.SomeMatches++
		}
	}

	if res.FullMatches == 0 {
		res.Interpretation = fmt.Sprintf(
			"%d random tickets never hit the full combination; the real odds are 1 in %d",
			simulations, res.TotalCombinations)
	} else {
		res.Interpretation = fmt.Sprintf(
			"%d of %d random tickets hit the full combination, far above the 1 in %d odds; treat this run as a fluke",
			res.FullMatches, simulations, res.TotalCombinations)
	}
	return res, nil
}
