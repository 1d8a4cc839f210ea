package sync

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

// syncBatchLimit bounds one sync call so a first run against an empty
// database does not hammer the provider for decades of history at once.
const syncBatchLimit = 500

// SyncProvider pulls contests missing locally from the results provider and
// stores them in one transaction. Returns how many new draws were stored.
func (s *serv) SyncProvider(ctx context.Context, cfg config.GameConfig) (int, error) {
	lastStored, err := s.repo.LastContest(ctx, cfg.Slug())
	if err != nil {
		return 0, err
	}

	latest, err := s.provider.FetchLatest(ctx, cfg.APISlug())
	if err != nil {
		return 0, err
	}
	if latest.Contest <= lastStored {
		return 0, nil
	}

	from := lastStored + 1
	if latest.Contest-from+1 > syncBatchLimit {
		from = latest.Contest - syncBatchLimit + 1
	}

	slog.Info("syncing draws from provider",
		"game", cfg.Slug(), "from", from, "to", latest.Contest)

	fetched := make([]model.Draw, 0, latest.Contest-from+1)
	for contest := from; contest <= latest.Contest; contest++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		var result = latest
		if contest != latest.Contest {
			result, err = s.provider.FetchContest(ctx, cfg.APISlug(), contest)
			if err != nil {
				return 0, fmt.Errorf("contest %d: %w", contest, err)
			}
		}

		numbers := append([]int(nil), result.Numbers...)
		sort.Ints(numbers)
		fetched = append(fetched, model.Draw{
			Contest: result.Contest,
			Date:    result.Date,
			Numbers: numbers,
		})
	}

	stored, err := s.storeDraws(ctx, cfg, fetched)
	if err != nil {
		return 0, err
	}

	slog.Info("sync finished", "game", cfg.Slug(), "stored", stored)
	return stored, nil
}

// storeDraws inserts a batch atomically and drops the cached snapshot when
// anything new landed.
func (s *serv) storeDraws(ctx context.Context, cfg config.GameConfig, draws []model.Draw) (int, error) {
	stored := 0
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, d := range draws {
			if err := validateDraw(cfg, d); err != nil {
				return err
			}
			inserted, err := s.repo.Insert(txCtx, cfg.Slug(), d)
			if err != nil {
				return err
			}
			if inserted {
				stored++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if stored > 0 {
		s.history.Invalidate(cfg.Slug())
	}
	return stored, nil
}

func validateDraw(cfg config.GameConfig, d model.Draw) error {
	if d.Contest <= 0 {
		return fmt.Errorf("contest number must be positive, got %d", d.Contest)
	}
	if len(d.Numbers) != cfg.BallCount() {
		return fmt.Errorf("contest %d has %d numbers, expected %d",
			d.Contest, len(d.Numbers), cfg.BallCount())
	}
	seen := make(map[int]bool, len(d.Numbers))
	for _, n := range d.Numbers {
		if n < cfg.MinNumber() || n > cfg.MaxNumber() {
			return fmt.Errorf("contest %d has number %d outside range %d..%d",
				d.Contest, n, cfg.MinNumber(), cfg.MaxNumber())
		}
		if seen[n] {
			return fmt.Errorf("contest %d repeats number %d", d.Contest, n)
		}
		seen[n] = true
	}
	return nil
}
