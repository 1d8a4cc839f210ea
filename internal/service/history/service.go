package history

import (
	"sync"
	"time"

	"lotostats_backend/internal/model"
	"lotostats_backend/internal/repository"
	"lotostats_backend/internal/service"
)

// defaultSnapshotTTL bounds how long a historical snapshot may be served
// without checking the store again.
const defaultSnapshotTTL = time.Minute

type snapshot struct {
	hctx    model.HistoricalContext
	builtAt time.Time
}

type serv struct {
	repo repository.DrawRepository
	ttl  time.Duration

	mtx       sync.RWMutex
	snapshots map[string]snapshot
}

func NewHistoryService(repo repository.DrawRepository, ttl time.Duration) service.HistoryService {
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	return &serv{
		repo:      repo,
		ttl:       ttl,
		snapshots: make(map[string]snapshot),
	}
}

// Invalidate drops the cached snapshot for a game. Called after any write to
// the draw history.
func (s *serv) Invalidate(gameSlug string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	delete(s.snapshots, gameSlug)
}
