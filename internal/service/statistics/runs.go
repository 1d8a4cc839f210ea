package statistics

import (
	"context"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

// RunsTest applies the Wald-Wolfowitz runs test to the flattened draw
// sequence, split around its median. Too few or too many runs both argue
// against randomness.
func (s *serv) RunsTest(ctx context.Context, cfg config.GameConfig) (*model.RunsTestResult, error) {
	draws, err := s.repo.ListByGame(ctx, cfg.Slug())
	if err != nil {
		return nil, err
	}
	if len(draws) < 2 {
		return nil, fmt.Errorf("need at least two stored draws for %s", cfg.Slug())
	}

	sequence := make([]float64, 0, len(draws)*cfg.BallCount())
	for _, d := range draws {
		for _, n := range d.Numbers {
			sequence = append(sequence, float64(n))
		}
	}
	median, _ := stats.Median(sequence)

	// Values on the median carry no sign and drop out.
	signs := make([]bool, 0, len(sequence))
	for _, v := range sequence {
		if v == median {
			continue
		}
		signs = append(signs, v > median)
	}

	n1, n2 := 0, 0
	runs := 0
	for i, above := range signs {
		if above {
			n1++
		} else {
			n2++
		}
		if i == 0 || signs[i] != signs[i-1] {
			runs++
		}
	}
	if n1 == 0 || n2 == 0 {
		return nil, fmt.Errorf("degenerate sequence for %s", cfg.Slug())
	}

	fn1, fn2 := float64(n1), float64(n2)
	expected := 2*fn1*fn2/(fn1+fn2) + 1
	variance := (2 * fn1 * fn2 * (2*fn1*fn2 - fn1 - fn2)) /
		((fn1 + fn2) * (fn1 + fn2) * (fn1 + fn2 - 1))
	if variance <= 0 {
		return nil, fmt.Errorf("degenerate sequence for %s", cfg.Slug())
	}

	z := (float64(runs) - expected) / math.Sqrt(variance)
	normal := distuv.Normal{Mu: 0, Sigma: 1}
	pValue := 2 * normal.Survival(math.Abs(z))

	res := &model.RunsTestResult{
		RunsObserved: runs,
		RunsExpected: expected,
		ZScore:       z,
		PValue:       pValue,
		IsRandom:     pValue > 0.05,
	}
	if res.IsRandom {
		res.Interpretation = "the draw sequence shows no runs-based pattern"
	} else {
		res.Interpretation = "the runs count deviates from what randomness predicts"
	}
	return res, nil
}
