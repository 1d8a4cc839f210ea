package analytics

import (
	"context"
	"fmt"
	"sort"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

// FrequentGroups returns the topN most co-drawn pairs (size 2) or trios
// (size 3), ties broken by the smaller numbers.
func (s *serv) FrequentGroups(ctx context.Context, cfg config.GameConfig, size, topN int) ([]model.NumberGroup, error) {
	if size != 2 && size != 3 {
		return nil, fmt.Errorf("group size must be 2 or 3, got %d", size)
	}
	if topN <= 0 {
		topN = 10
	}

	draws, err := s.repo.ListByGame(ctx, cfg.Slug())
	if err != nil {
		return nil, err
	}

	counts := make(map[string]model.NumberGroup)
	for _, d := range draws {
		nums := d.Numbers
		if size == 2 {
			for i := 0; i < len(nums); i++ {
				for j := i + 1; j < len(nums); j++ {
					bump(counts, []int{nums[i], nums[j]})
				}
			}
			continue
		}
		for i := 0; i < len(nums); i++ {
			for j := i + 1; j < len(nums); j++ {
				for k := j + 1; k < len(nums); k++ {
					bump(counts, []int{nums[i], nums[j], nums[k]})
				}
			}
		}
	}

	groups := make([]model.NumberGroup, 0, len(counts))
	for _, g := range counts {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		for k := range groups[i].Numbers {
			if groups[i].Numbers[k] != groups[j].Numbers[k] {
				return groups[i].Numbers[k] < groups[j].Numbers[k]
			}
		}
		return false
	})

	if len(groups) > topN {
		groups = groups[:topN]
	}
	return groups, nil
}

func bump(counts map[string]model.NumberGroup, numbers []int) {
	key := fmt.Sprint(numbers)
	g, ok := counts[key]
	if !ok {
		g = model.NumberGroup{Numbers: numbers}
	}
	g.Count++
	counts[key] = g
}
