package history

import (
	"context"
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

const (
	// classifyBandFactor is the fraction of a standard deviation around the
	// mean frequency that separates hot and cold numbers from neutral ones.
	classifyBandFactor = 0.5
	// delayedGapFactor marks a number as delayed once its current gap
	// exceeds this multiple of its own mean historical gap.
	delayedGapFactor = 1.5
	// topDrawnCount is how many of the most frequent numbers feed the
	// "exclude most drawn" filter.
	topDrawnCount = 10
)

// Context returns the historical snapshot for a game, serving a cached copy
// while it is fresh. Snapshots are read-only: callers never mutate them.
func (s *serv) Context(ctx context.Context, cfg config.GameConfig) (model.HistoricalContext, error) {
	s.mtx.RLock()
	snap, ok := s.snapshots[cfg.Slug()]
	s.mtx.RUnlock()

	if ok && time.Since(snap.builtAt) < s.ttl {
		return snap.hctx, nil
	}

	draws, err := s.repo.ListByGame(ctx, cfg.Slug())
	if err != nil {
		return model.HistoricalContext{}, err
	}

	hctx := BuildContext(cfg, draws)

	s.mtx.Lock()
	s.snapshots[cfg.Slug()] = snapshot{hctx: hctx, builtAt: time.Now()}
	s.mtx.Unlock()

	return hctx, nil
}

// BuildContext derives the classification snapshot from an ordered draw
// history. With no history every set is empty and the scalars stay neutral,
// so generation degrades to plain random selection.
func BuildContext(cfg config.GameConfig, draws []model.Draw) model.HistoricalContext {
	if len(draws) == 0 {
		return model.EmptyContext(cfg.BallCount())
	}

	hctx := model.EmptyContext(cfg.BallCount())
	hctx.Contests = len(draws)

	// Appearance contests per number, in draw order.
	appearances := make(map[int][]int)
	sums := make([]float64, 0, len(draws))
	evens := make([]float64, 0, len(draws))

	for _, d := range draws {
		for _, n := range d.Numbers {
			hctx.Frequency[n]++
			appearances[n] = append(appearances[n], d.Contest)
		}
		sums = append(sums, float64(d.Sum()))
		evens = append(evens, float64(d.EvenCount()))
	}

	hctx.AverageSum, _ = stats.Mean(sums)
	hctx.AverageEvens, _ = stats.Mean(evens)
	hctx.LastDraw = model.NewNumberSet(draws[len(draws)-1].Numbers)

	classify(hctx.Frequency, &hctx)
	markDelayed(appearances, draws[len(draws)-1].Contest, hctx.DelayedNumbers)

	return hctx
}

// classify splits drawn numbers into hot and cold bands around the mean
// frequency and records the most frequent ones.
func classify(frequency map[int]int, hctx *model.HistoricalContext) {
	type numberCount struct {
		number int
		count  int
	}

	counts := make([]float64, 0, len(frequency))
	ordered := make([]numberCount, 0, len(frequency))
	for n, c := range frequency {
		counts = append(counts, float64(c))
		ordered = append(ordered, numberCount{number: n, count: c})
	}
	if len(counts) == 0 {
		return
	}

	mean, _ := stats.Mean(counts)
	std, _ := stats.StandardDeviationSample(counts)

	for _, nc := range ordered {
		switch {
		case float64(nc.count) > mean+std*classifyBandFactor:
			hctx.HotNumbers[nc.number] = true
		case float64(nc.count) < mean-std*classifyBandFactor:
			hctx.ColdNumbers[nc.number] = true
		}
	}

	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].number < ordered[j].number
	})
	for i := 0; i < len(ordered) && i < topDrawnCount; i++ {
		hctx.TopDrawn[ordered[i].number] = true
	}
}

// markDelayed flags numbers whose current gap exceeds delayedGapFactor times
// their own mean gap between appearances. Numbers seen fewer than twice have
// no gap history and are never flagged.
func markDelayed(appearances map[int][]int, lastContest int, delayed model.NumberSet) {
	for n, contests := range appearances {
		if len(contests) < 2 {
			continue
		}

		gaps := make([]float64, 0, len(contests)-1)
		for i := 1; i < len(contests); i++ {
			gaps = append(gaps, float64(contests[i]-contests[i-1]))
		}
		meanGap, _ := stats.Mean(gaps)
		if meanGap <= 0 {
			continue
		}

		currentGap := float64(lastContest - contests[len(contests)-1])
		if currentGap > meanGap*delayedGapFactor {
			delayed[n] = true
		}
	}
}
