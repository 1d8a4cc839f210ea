package statistics

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

// ChiSquare tests the observed number frequencies against the uniform
// expectation. A high p-value means the history is consistent with fair
// draws.
func (s *serv) ChiSquare(ctx context.Context, cfg config.GameConfig) (*model.ChiSquareResult, error) {
	draws, err := s.repo.ListByGame(ctx, cfg.Slug())
	if err != nil {
		return nil, err
	}
	if len(draws) == 0 {
		return nil, fmt.Errorf("no stored draws for %s", cfg.Slug())
	}

	k := cfg.MaxNumber() - cfg.MinNumber() + 1
	observed := make([]float64, k)
	total := 0
	for _, d := range draws {
		for _, n := range d.Numbers {
			observed[n-cfg.MinNumber()]++
			total++
		}
	}

	expected := float64(total) / float64(k)
	statistic := 0.0
	for _, obs := range observed {
		diff := obs - expected
		statistic += diff * diff / expected
	}

	dist := distuv.ChiSquared{K: float64(k - 1)}
	pValue := dist.Survival(statistic)

	res := &model.ChiSquareResult{
		Statistic:      statistic,
		PValue:         pValue,
		DegreesFreedom: k - 1,
		IsUniform:      pValue > 0.05,
	}
	res.Interpretation = interpretPValue(pValue)
	return res, nil
}

func interpretPValue(p float64) string {
	switch {
	case p > 0.10:
		return "the distribution is consistent with fair uniform draws"
	case p > 0.05:
		return "no significant deviation from uniformity"
	case p > 0.01:
		return "weak evidence of non-uniformity, likely sampling noise"
	default:
		return "significant deviation from uniformity, check the data source"
	}
}
