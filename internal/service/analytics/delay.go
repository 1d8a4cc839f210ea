package analytics

import (
	"context"
	"sort"

	"github.com/montanaflynn/stats"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

const (
	watchGapFactor    = 1.5
	criticalGapFactor = 2.0
)

// Delay builds the overdue table: for every number with at least two
// appearances, its current gap measured against its own mean gap. Ordered by
// current gap, most overdue first. topN <= 0 returns the full table.
func (s *serv) Delay(ctx context.Context, cfg config.GameConfig, topN int) ([]model.DelayEntry, error) {
	draws, err := s.repo.ListByGame(ctx, cfg.Slug())
	if err != nil {
		return nil, err
	}
	if len(draws) == 0 {
		return []model.DelayEntry{}, nil
	}

	appearances := make(map[int][]int)
	for _, d := range draws {
		for _, n := range d.Numbers {
			appearances[n] = append(appearances[n], d.Contest)
		}
	}
	lastContest := draws[len(draws)-1].Contest

	entries := make([]model.DelayEntry, 0, len(appearances))
	for n, contests := range appearances {
		if len(contests) < 2 {
			continue
		}

		gaps := make([]float64, 0, len(contests)-1)
		for i := 1; i < len(contests); i++ {
			gaps = append(gaps, float64(contests[i]-contests[i-1]))
		}
		meanGap, _ := stats.Mean(gaps)
		// A single gap has no sample deviation.
		stdGap := 0.0
		if len(gaps) > 1 {
			stdGap, _ = stats.StandardDeviationSample(gaps)
		}

		seenLast := contests[len(contests)-1]
		entries = append(entries, model.DelayEntry{
			Number:      n,
			LastContest: seenLast,
			CurrentGap:  lastContest - seenLast,
			MeanGap:     meanGap,
			GapStdDev:   stdGap,
			Status:      delayStatus(float64(lastContest-seenLast), meanGap),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CurrentGap != entries[j].CurrentGap {
			return entries[i].CurrentGap > entries[j].CurrentGap
		}
		return entries[i].Number < entries[j].Number
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	return entries, nil
}

func delayStatus(currentGap, meanGap float64) model.DelayStatus {
	if meanGap <= 0 {
		return model.DelayNormal
	}
	switch {
	case currentGap > meanGap*criticalGapFactor:
		return model.DelayCritical
	case currentGap > meanGap*watchGapFactor:
		return model.DelayWatch
	default:
		return model.DelayNormal
	}
}
