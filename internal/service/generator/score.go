package generator

import (
	"math"

	"lotostats_backend/internal/model"
)

// Scoring knobs. The values are heuristic and tunable; the score they produce
// is descriptive output only and never feeds back into acceptance.
const (
	sumPenaltyTrigger = 0.3 // deviation from the mean sum, as a fraction of it
	sumPenaltyScale   = 30
	sumPenaltyMax     = 20

	parityExtremePenalty     = 15 // all even or all odd
	parityNearExtremePenalty = 5  // one away from an extreme

	delayedBonusPerNumber = 2
	hotColdMixBonus       = 10
)

// score computes the [0,100] compatibility heuristic for an already-valid
// combination. It rewards resemblance to historical averages, which says
// nothing about winning chances: all combinations are equiprobable.
func score(ballCount int, hctx model.HistoricalContext, numbers []int) float64 {
	result := 100.0

	sum := 0
	evens := 0
	delayed := 0
	hot := 0
	cold := 0
	for _, n := range numbers {
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

	// Sum deviation penalty, skipped when no history set an average.
	if hctx.AverageSum > 0 {
		diff := math.Abs(float64(sum) - hctx.AverageSum)
		if diff > hctx.AverageSum*sumPenaltyTrigger {
			result -= math.Min(sumPenaltyMax, diff/hctx.AverageSum*sumPenaltyScale)
		}
	}

	switch {
	case evens == 0 || evens == ballCount:
		result -= parityExtremePenalty
	case evens == 1 || evens == ballCount-1:
		result -= parityNearExtremePenalty
	}

	result += float64(delayed * delayedBonusPerNumber)

	if hot > 0 && cold > 0 {
		result += hotColdMixBonus
	}

	return math.Min(100, math.Max(0, result))
}
