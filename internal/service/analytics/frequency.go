package analytics

import (
	"context"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

// Frequency returns the appearance count of every number in the game range,
// including numbers that never came up, ordered by number.
func (s *serv) Frequency(ctx context.Context, cfg config.GameConfig) ([]model.FrequencyEntry, error) {
	draws, err := s.repo.ListByGame(ctx, cfg.Slug())
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int)
	for _, d := range draws {
		for _, n := range d.Numbers {
			counts[n]++
		}
	}

	entries := make([]model.FrequencyEntry, 0, cfg.MaxNumber()-cfg.MinNumber()+1)
	for n := cfg.MinNumber(); n <= cfg.MaxNumber(); n++ {
		entry := model.FrequencyEntry{Number: n, Count: counts[n]}
		if len(draws) > 0 {
			entry.Percent = float64(counts[n]) / float64(len(draws)) * 100
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
