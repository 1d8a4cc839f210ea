package converter

import (
	dto "lotostats_backend/internal/api/dto/analytics"
	"lotostats_backend/internal/model"
)

func ToFrequencyResponse(entries []model.FrequencyEntry) dto.FrequencyResponse {
	res := dto.FrequencyResponse{Entries: make([]dto.FrequencyEntry, len(entries))}
	for i, e := range entries {
		res.Entries[i] = dto.FrequencyEntry{
			Number:  e.Number,
			Count:   e.Count,
			Percent: e.Percent,
		}
	}
	return res
}

func ToDelayResponse(entries []model.DelayEntry) dto.DelayResponse {
	res := dto.DelayResponse{Entries: make([]dto.DelayEntry, len(entries))}
	for i, e := range entries {
		res.Entries[i] = dto.DelayEntry{
			Number:      e.Number,
			LastContest: e.LastContest,
			CurrentGap:  e.CurrentGap,
			MeanGap:     e.MeanGap,
			GapStdDev:   e.GapStdDev,
			Status:      string(e.Status),
		}
	}
	return res
}

func ToParityResponse(buckets []model.ParityBucket) dto.ParityResponse {
	res := dto.ParityResponse{Buckets: make([]dto.ParityBucket, len(buckets))}
	for i, b := range buckets {
		res.Buckets[i] = dto.ParityBucket{
			Evens:   b.Evens,
			Odds:    b.Odds,
			Count:   b.Count,
			Percent: b.Percent,
		}
	}
	return res
}

func ToSumStatsResponse(stats model.SumStats) dto.SumStatsResponse {
	return dto.SumStatsResponse{
		Mean:   stats.Mean,
		Median: stats.Median,
		StdDev: stats.StdDev,
		Min:    stats.Min,
		Max:    stats.Max,
		Q1:     stats.Q1,
		Q3:     stats.Q3,
	}
}

func ToGroupsResponse(groups []model.NumberGroup) dto.GroupsResponse {
	res := dto.GroupsResponse{Groups: make([]dto.NumberGroup, len(groups))}
	for i, g := range groups {
		res.Groups[i] = dto.NumberGroup{
			Numbers: g.Numbers,
			Count:   g.Count,
		}
	}
	return res
}

func ToCompareResponse(cmp model.GameComparison) dto.CompareResponse {
	return dto.CompareResponse{
		Numbers:      cmp.Numbers,
		Sum:          cmp.Sum,
		EvenCount:    cmp.EvenCount,
		OddCount:     cmp.OddCount,
		ExactMatches: cmp.ExactMatches,
		NearMatches:  cmp.NearMatches,
		GoodMatches:  cmp.GoodMatches,
		Originality:  cmp.Originality,
	}
}
