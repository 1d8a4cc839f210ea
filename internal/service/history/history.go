package history

import (
	"context"
	"fmt"
	"sort"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

// Draws returns the latest draws, newest first. limit <= 0 returns everything.
func (s *serv) Draws(ctx context.Context, cfg config.GameConfig, limit int) ([]model.Draw, error) {
	if limit > 0 {
		return s.repo.ListRecent(ctx, cfg.Slug(), limit)
	}

	draws, err := s.repo.ListByGame(ctx, cfg.Slug())
	if err != nil {
		return nil, err
	}
	// Newest first, matching the limited path.
	sort.Slice(draws, func(i, j int) bool { return draws[i].Contest > draws[j].Contest })
	return draws, nil
}

// AddDraw validates and stores one draw. Returns false when the contest is
// already present.
func (s *serv) AddDraw(ctx context.Context, cfg config.GameConfig, draw model.Draw) (bool, error) {
	if draw.Contest <= 0 {
		return false, fmt.Errorf("contest number must be positive")
	}
	if len(draw.Numbers) != cfg.BallCount() {
		return false, fmt.Errorf("expected %d numbers, got %d", cfg.BallCount(), len(draw.Numbers))
	}

	seen := make(map[int]bool, len(draw.Numbers))
	for _, n := range draw.Numbers {
		if n < cfg.MinNumber() || n > cfg.MaxNumber() {
			return false, fmt.Errorf("number %d out of range %d-%d", n, cfg.MinNumber(), cfg.MaxNumber())
		}
		if seen[n] {
			return false, fmt.Errorf("duplicate number %d", n)
		}
		seen[n] = true
	}

	sort.Ints(draw.Numbers)

	inserted, err := s.repo.Insert(ctx, cfg.Slug(), draw)
	if err != nil {
		return false, fmt.Errorf("failed to store draw %d: %w", draw.Contest, err)
	}
	if inserted {
		s.Invalidate(cfg.Slug())
	}

	return inserted, nil
}

// KPIs summarizes the stored history for the dashboard.
func (s *serv) KPIs(ctx context.Context, cfg config.GameConfig) (*model.KPISummary, error) {
	draws, err := s.repo.ListByGame(ctx, cfg.Slug())
	if err != nil {
		return nil, err
	}

	kpis := &model.KPISummary{
		GameName:      cfg.Name(),
		TotalContests: len(draws),
	}
	if len(draws) == 0 {
		return kpis, nil
	}

	first, last := draws[0], draws[len(draws)-1]
	kpis.FirstContest = first.Contest
	kpis.LastContest = last.Contest
	kpis.FirstDate = first.Date
	kpis.LastDate = last.Date
	kpis.LastNumbers = append([]int(nil), last.Numbers...)

	return kpis, nil
}
