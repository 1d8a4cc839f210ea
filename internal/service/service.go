package service

import (
	"context"

	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

type HistoryService interface {
	// Draws returns the latest draws, newest first. limit <= 0 means all.
	Draws(ctx context.Context, cfg config.GameConfig, limit int) ([]model.Draw, error)
	// AddDraw stores a draw, returns false when the contest already exists.
	AddDraw(ctx context.Context, cfg config.GameConfig, draw model.Draw) (bool, error)
	KPIs(ctx context.Context, cfg config.GameConfig) (*model.KPISummary, error)
	// Context returns the cached historical snapshot for a game, rebuilding
	// it when stale.
	Context(ctx context.Context, cfg config.GameConfig) (model.HistoricalContext, error)
	// Invalidate drops the cached snapshot after history writes.
	Invalidate(gameSlug string)
}

type GeneratorService interface {
	// Generate produces up to count unique combinations under the given
	// filters. A shorter result means the filters were too restrictive; it
	// is not an error.
	Generate(ctx context.Context, cfg config.GameConfig, hctx model.HistoricalContext,
		filters model.GenerationFilters, count int, allowDuplicates bool) ([]model.GeneratedGame, error)
}

type AnalyticsService interface {
	Frequency(ctx context.Context, cfg config.GameConfig) ([]model.FrequencyEntry, error)
	Delay(ctx context.Context, cfg config.GameConfig, topN int) ([]model.DelayEntry, error)
	Parity(ctx context.Context, cfg config.GameConfig) ([]model.ParityBucket, error)
	SumStats(ctx context.Context, cfg config.GameConfig) (*model.SumStats, error)
	// FrequentGroups returns the topN most co-drawn pairs (size 2) or trios
	// (size 3).
	FrequentGroups(ctx context.Context, cfg config.GameConfig, size, topN int) ([]model.NumberGroup, error)
	Compare(ctx context.Context, cfg config.GameConfig, numbers []int) (*model.GameComparison, error)
}

type StatisticsService interface {
	ChiSquare(ctx context.Context, cfg config.GameConfig) (*model.ChiSquareResult, error)
	RunsTest(ctx context.Context, cfg config.GameConfig) (*model.RunsTestResult, error)
	MonteCarlo(ctx context.Context, cfg config.GameConfig, simulations int) (*model.MonteCarloResult, error)
}

type SyncService interface {
	// SyncProvider pulls contests missing locally from the results provider.
	// Returns how many new draws were stored.
	SyncProvider(ctx context.Context, cfg config.GameConfig) (int, error)
	// ImportFile loads draws from an .xlsx history file.
	ImportFile(ctx context.Context, cfg config.GameConfig, path string) (int, error)
}

type ExportService interface {
	GamesXLSX(cfg config.GameConfig, games []model.GeneratedGame) ([]byte, error)
	GamesCSV(cfg config.GameConfig, games []model.GeneratedGame) ([]byte, error)
	HistoryXLSX(ctx context.Context, cfg config.GameConfig) ([]byte, error)
}
