package converter

import (
	dto "lotostats_backend/internal/api/dto/statistics"
	"lotostats_backend/internal/model"
)

func ToChiSquareResponse(res model.ChiSquareResult) dto.ChiSquareResponse {
	return dto.ChiSquareResponse{
		Statistic:      res.Statistic,
		PValue:         res.PValue,
		DegreesFreedom: res.DegreesFreedom,
		IsUniform:      res.IsUniform,
		Interpretation: res.Interpretation,
	}
}

func ToRunsTestResponse(res model.RunsTestResult) dto.RunsTestResponse {
	return dto.RunsTestResponse{
		RunsObserved:   res.RunsObserved,
		RunsExpected:   res.RunsExpected,
		ZScore:         res.ZScore,
		PValue:         res.PValue,
		IsRandom:       res.IsRandom,
		Interpretation: res.Interpretation,
	}
}

func ToStatisticsResponse(chi model.ChiSquareResult, runs model.RunsTestResult) dto.StatisticsResponse {
	return dto.StatisticsResponse{
		ChiSquare: ToChiSquareResponse(chi),
		RunsTest:  ToRunsTestResponse(runs),
	}
}

func ToMonteCarloResponse(res model.MonteCarloResult) dto.MonteCarloResponse {
	return dto.MonteCarloResponse{
		Simulations:       res.Simulations,
		FullMatches:       res.FullMatches,
		OneOffMatches:     res.OneOffMatches,
		TwoOffMatches:     res.TwoOffMatches,
		ThreeOffMatches:   res.ThreeOffMatches,
		SomeMatches:       res.SomeMatches,
		NoMatches:         res.NoMatches,
		TotalCombinations: res.TotalCombinations,
		Interpretation:    res.Interpretation,
	}
}
