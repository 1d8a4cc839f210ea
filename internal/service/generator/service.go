// Package generator produces lottery combinations satisfying user filters by
// rejection sampling over a historically-classified number pool. It filters
// and prefers among equally likely combinations for educational purposes; it
// cannot and does not improve the odds of winning.
package generator

import (
	"lotostats_backend/internal/service"
	"lotostats_backend/pkg/rng"
)

const (
	// maxAttemptsPerGame bounds the rejection-sampling loop for a single
	// combination.
	maxAttemptsPerGame = 1000

	// contrarianDelayedNum/Den target this share of picks from the delayed
	// set under the contrarian strategy. A heuristic knob, not a contract.
	contrarianDelayedNum = 2
	contrarianDelayedDen = 3
)

type serv struct {
	newSource func() rng.Source
}

// NewGeneratorService builds the generator. sourceFactory produces one random
// source per generation call; pass nil for wall-clock seeding. Tests inject a
// fixed-seed factory to make batches reproducible.
func NewGeneratorService(sourceFactory func() rng.Source) service.GeneratorService {
	if sourceFactory == nil {
		sourceFactory = rng.NewTimeSeeded
	}
	return &serv{newSource: sourceFactory}
}
