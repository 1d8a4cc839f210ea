package converter

import (
	"time"

	dto "lotostats_backend/internal/api/dto/game"
	"lotostats_backend/internal/config"
	"lotostats_backend/internal/model"
)

const dateLayout = "02/01/2006"

func ToGameInfo(cfg config.GameConfig) dto.GameInfo {
	return dto.GameInfo{
		Name:              cfg.Name(),
		Slug:              cfg.Slug(),
		BallCount:         cfg.BallCount(),
		MinNumber:         cfg.MinNumber(),
		MaxNumber:         cfg.MaxNumber(),
		TotalCombinations: cfg.TotalCombinations(),
	}
}

func ToDrawResponse(draw model.Draw) dto.DrawResponse {
	res := dto.DrawResponse{
		Contest: draw.Contest,
		Numbers: draw.Numbers,
	}
	if !draw.Date.IsZero() {
		res.Date = draw.Date.Format(dateLayout)
	}
	return res
}

func ToHistoryResponse(draws []model.Draw) dto.HistoryResponse {
	res := dto.HistoryResponse{
		Total: len(draws),
		Draws: make([]dto.DrawResponse, len(draws)),
	}
	for i, d := range draws {
		res.Draws[i] = ToDrawResponse(d)
	}
	return res
}

// ToDraw parses an add-draw request. An unparseable date is dropped, not
// rejected; some historical contests carry none.
func ToDraw(req dto.AddDrawRequest) model.Draw {
	draw := model.Draw{
		Contest: req.Contest,
		Numbers: req.Numbers,
	}
	if parsed, err := time.Parse(dateLayout, req.Date); err == nil {
		draw.Date = parsed
	}
	return draw
}

func ToKPIResponse(kpis model.KPISummary) dto.KPIResponse {
	res := dto.KPIResponse{
		GameName:      kpis.GameName,
		TotalContests: kpis.TotalContests,
		FirstContest:  kpis.FirstContest,
		LastContest:   kpis.LastContest,
		LastNumbers:   kpis.LastNumbers,
	}
	if !kpis.FirstDate.IsZero() {
		res.FirstDate = kpis.FirstDate.Format(dateLayout)
	}
	if !kpis.LastDate.IsZero() {
		res.LastDate = kpis.LastDate.Format(dateLayout)
	}
	return res
}
