package analytics

type FrequencyEntry struct {
	Number  int     `json:"number"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type FrequencyResponse struct {
	Entries []FrequencyEntry `json:"entries"`
}

type DelayEntry struct {
	Number      int     `json:"number"`
	LastContest int     `json:"last_contest"`
	CurrentGap  int     `json:"current_gap"`
	MeanGap     float64 `json:"mean_gap"`
	GapStdDev   float64 `json:"gap_std_dev"`
	Status      string  `json:"status"` // normal, watch, critical
}

type DelayResponse struct {
	Entries []DelayEntry `json:"entries"`
}

type ParityBucket struct {
	Evens   int     `json:"evens"`
	Odds    int     `json:"odds"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type ParityResponse struct {
	Buckets []ParityBucket `json:"buckets"`
}

type SumStatsResponse struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
}

type NumberGroup struct {
	Numbers []int `json:"numbers"`
	Count   int   `json:"count"`
}

type GroupsResponse struct {
	Groups []NumberGroup `json:"groups"`
}

type CompareRequest struct {
	Numbers []int `json:"numbers"`
}

type CompareResponse struct {
	Numbers      []int   `json:"numbers"`
	Sum          int     `json:"sum"`
	EvenCount    int     `json:"even_count"`
	OddCount     int     `json:"odd_count"`
	ExactMatches int     `json:"exact_matches"`
	NearMatches  int     `json:"near_matches"`
	GoodMatches  int     `json:"good_matches"`
	Originality  float64 `json:"originality"`
}
