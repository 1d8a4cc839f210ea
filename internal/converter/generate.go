package converter

import (
	dto "lotostats_backend/internal/api/dto/generate"
	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

// ToGenerationFilters maps a generate request onto model filters, filling the
// omitted bounds with the widest admissible values for the game.
func ToGenerationFilters(req dto.GenerateRequest, cfg config.GameConfig) model.GenerationFilters {
	f := model.GenerationFilters{
		ExcludeLastDraw:  req.ExcludeLastDraw,
		ExcludeMostDrawn: req.ExcludeMostDrawn,
		MaxEvens:         cfg.BallCount(),
		MaxSum:           maxPossibleSum(cfg),
		FixedNumbers:     req.FixedNumbers,
		Strategy:         model.Strategy(req.Strategy),
	}
	if f.Strategy == "" {
		f.Strategy = model.StrategyRandom
	}
	if req.MinEvens != nil {
		f.MinEvens = *req.MinEvens
	}
	if req.MaxEvens != nil {
		f.MaxEvens = *req.MaxEvens
	}
	if req.MinSum != nil {
		f.MinSum = *req.MinSum
	}
	if req.MaxSum != nil {
		f.MaxSum = *req.MaxSum
	}
	return f
}

func maxPossibleSum(cfg config.GameConfig) int {
	sum := 0
	for i := 0; i < cfg.BallCount(); i++ {
		sum += cfg.MaxNumber() - i
	}
	return sum
}

func ToGameResponse(game model.GeneratedGame) dto.GameResponse {
	return dto.GameResponse{
		Numbers:      game.Numbers,
		Sum:          game.SumValue,
		EvenCount:    game.EvenCount,
		OddCount:     game.OddCount,
		DelayedCount: game.DelayedCount,
		HotCount:     game.HotCount,
		ColdCount:    game.ColdCount,
		Score:        game.CompatibilityScore,
	}
}

func ToGenerateResponse(requested int, games []model.GeneratedGame) dto.GenerateResponse {
	res := dto.GenerateResponse{
		Requested: requested,
		Generated: len(games),
		Complete:  len(games) == requested,
		Games:     make([]dto.GameResponse, len(games)),
	}
	for i, g := range games {
		res.Games[i] = ToGameResponse(g)
	}
	return res
}

// ToGeneratedGames maps export payload rows back onto the model for the
// spreadsheet writers.
func ToGeneratedGames(games []dto.GameResponse) []model.GeneratedGame {
	result := make([]model.GeneratedGame, len(games))
	for i, g := range games {
		result[i] = model.GeneratedGame{
			Numbers:            g.Numbers,
			SumValue:           g.Sum,
			EvenCount:          g.EvenCount,
			OddCount:           g.OddCount,
			DelayedCount:       g.DelayedCount,
			HotCount:           g.HotCount,
			ColdCount:          g.ColdCount,
			CompatibilityScore: g.Score,
		}
	}
	return result
}
