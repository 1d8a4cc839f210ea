package repository

import (
	"context"

	"lotostats_backend/internal/model"
)

type DrawRepository interface {
	// ListByGame returns the full stored history ordered by contest ascending.
	ListByGame(ctx context.Context, gameSlug string) ([]model.Draw, error)
	// ListRecent returns the latest draws, newest first.
	ListRecent(ctx context.Context, gameSlug string, limit int) ([]model.Draw, error)
	// LastContest returns the highest stored contest number, 0 when empty.
	LastContest(ctx context.Context, gameSlug string) (int, error)
	// Insert stores a draw. Returns false when the contest already exists.
	Insert(ctx context.Context, gameSlug string, draw model.Draw) (bool, error)
	Count(ctx context.Context, gameSlug string) (int, error)
}
