package analytics

import (
	"context"
	"sort"

	"github.com/montanaflynn/stats"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

// Parity counts how often each even/odd split occurred across the history.
func (s *serv) Parity(ctx context.Context, cfg config.GameConfig) ([]model.ParityBucket, error) {
	draws, err := s.repo.ListByGame(ctx, cfg.Slug())
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int)
	for _, d := range draws {
		counts[d.EvenCount()]++
	}

	buckets := make([]model.ParityBucket, 0, len(counts))
	for evens, count := range counts {
		b := model.ParityBucket{
			Evens: evens,
			Odds:  cfg.BallCount() - evens,
			Count: count,
		}
		if len(draws) > 0 {
			b.Percent = float64(count) / float64(len(draws)) * 100
		}
		buckets = append(buckets, b)
	}

	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Evens < buckets[j].Evens })
	return buckets, nil
}

// SumStats summarizes the distribution of historical draw sums.
func (s *serv) SumStats(ctx context.Context, cfg config.GameConfig) (*model.SumStats, error) {
	draws, err := s.repo.ListByGame(ctx, cfg.Slug())
	if err != nil {
		return nil, err
	}
	if len(draws) == 0 {
		return &model.SumStats{}, nil
	}

	sums := make([]float64, 0, len(draws))
	minSum, maxSum := draws[0].Sum(), draws[0].Sum()
	for _, d := range draws {
		sum := d.Sum()
		sums = append(sums, float64(sum))
		if sum < minSum {
			minSum = sum
		}
		if sum > maxSum {
			maxSum = sum
		}
	}

	mean, _ := stats.Mean(sums)
	median, _ := stats.Median(sums)
	std := 0.0
	if len(sums) > 1 {
		std, _ = stats.StandardDeviationSample(sums)
	}
	q1, _ := stats.Percentile(sums, 25)
	q3, _ := stats.Percentile(sums, 75)

	return &model.SumStats{
		Mean:   mean,
		Median: median,
		StdDev: std,
		Min:    minSum,
		Max:    maxSum,
		Q1:     q1,
		Q3:     q3,
	}, nil
}
