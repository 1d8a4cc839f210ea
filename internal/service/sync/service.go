package sync

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"lotostats_backend/internal/repository"
	"lotostats_backend/internal/service"
	"lotostats_backend/pkg/caixa"
)

// ResultsProvider is the slice of the Caixa client the sync flow needs.
type ResultsProvider interface {
	FetchLatest(ctx context.Context, apiSlug string) (*caixa.Result, error)
	FetchContest(ctx context.Context, apiSlug string, contest int) (*caixa.Result, error)
}

type serv struct {
	repo      repository.DrawRepository
	provider  ResultsProvider
	history   service.HistoryService
	txManager trm.Manager
}

func NewSyncService(
	repo repository.DrawRepository,
	provider ResultsProvider,
	history service.HistoryService,
	txManager trm.Manager,
) service.SyncService {
	return &serv{
		repo:      repo,
		provider:  provider,
		history:   history,
		txManager: txManager,
	}
}
