package generate

type GenerateRequest struct {
	Count            int    `json:"count"`
	Strategy         string `json:"strategy"` // random, balanced, contrarian
	ExcludeLastDraw  bool   `json:"exclude_last_draw"`
	ExcludeMostDrawn bool   `json:"exclude_most_drawn"`
	MinEvens         *int   `json:"min_evens,omitempty"`
	MaxEvens         *int   `json:"max_evens,omitempty"`
	MinSum           *int   `json:"min_sum,omitempty"`
	MaxSum           *int   `json:"max_sum,omitempty"`
	FixedNumbers     []int  `json:"fixed_numbers,omitempty"`
	AllowDuplicates  bool   `json:"allow_duplicates"`
}

type GameResponse struct {
	Numbers      []int   `json:"numbers"`
	Sum          int     `json:"sum"`
	EvenCount    int     `json:"even_count"`
	OddCount     int     `json:"odd_count"`
	DelayedCount int     `json:"delayed_count"`
	HotCount     int     `json:"hot_count"`
	ColdCount    int     `json:"cold_count"`
	Score        float64 `json:"score"`
}

type GenerateResponse struct {
	Requested int            `json:"requested"`
	Generated int            `json:"generated"`
	Complete  bool           `json:"complete"`
	Games     []GameResponse `json:"games"`
}

type ExportRequest struct {
	Format string         `json:"format"` // xlsx or csv, defaults to xlsx
	Games  []GameResponse `json:"games"`
}
