// Package statistics runs randomness checks over the stored history. Results
// exist to demonstrate that the draws behave like fair random processes, not
// to find exploitable patterns.
package statistics

import (
	"lotostats_backend/internal/repository"
	"lotostats_backend/internal/service"
	"lotostats_backend/pkg/rng"
)

type serv struct {
	repo      repository.DrawRepository
	newSource func() rng.Source
}

// NewStatisticsService wires the randomness checks. A nil sourceFactory falls
// back to time-seeded randomness for the Monte Carlo simulation.
func NewStatisticsService(repo repository.DrawRepository, sourceFactory func() rng.Source) service.StatisticsService {
	if sourceFactory == nil {
		sourceFactory = rng.NewTimeSeeded
	}
	return &serv{repo: repo, newSource: sourceFactory}
}
