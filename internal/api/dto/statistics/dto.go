package statistics

type ChiSquareResponse struct {
	Statistic      float64 `json:"statistic"`
	PValue         float64 `json:"p_value"`
	DegreesFreedom int     `json:"degrees_freedom"`
	IsUniform      bool    `json:"is_uniform"`
	Interpretation string  `json:"interpretation"`
}

type RunsTestResponse struct {
	RunsObserved   int     `json:"runs_observed"`
	RunsExpected   float64 `json:"runs_expected"`
	ZScore         float64 `json:"z_score"`
	PValue         float64 `json:"p_value"`
	IsRandom       bool    `json:"is_random"`
	Interpretation string  `json:"interpretation"`
}

type StatisticsResponse struct {
	ChiSquare ChiSquareResponse `json:"chi_square"`
	RunsTest  RunsTestResponse  `json:"runs_test"`
}

type MonteCarloResponse struct {
	Simulations       int    `json:"simulations"`
	FullMatches       int    `json:"full_matches"`
	OneOffMatches     int    `json:"one_off_matches"`
	TwoOffMatches     int    `json:"two_off_matches"`
	ThreeOffMatches   int    `json:"three_off_matches"`
	SomeMatches       int    `json:"some_matches"`
	NoMatches         int    `json:"no_matches"`
	TotalCombinations int64  `json:"total_combinations"`
	Interpretation    string `json:"interpretation"`
}
