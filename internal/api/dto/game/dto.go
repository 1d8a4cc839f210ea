package game

type GameInfo struct {
	Name              string `json:"name"`
	Slug              string `json:"slug"`
	BallCount         int    `json:"ball_count"`
	MinNumber         int    `json:"min_number"`
	MaxNumber         int    `json:"max_number"`
	TotalCombinations int64  `json:"total_combinations"`
}

type GamesResponse struct {
	Games []GameInfo `json:"games"`
}

type DrawResponse struct {
	Contest int    `json:"contest"`
	Date    string `json:"date,omitempty"` // DD/MM/YYYY
	Numbers []int  `json:"numbers"`
}

type HistoryResponse struct {
	Total int            `json:"total"`
	Draws []DrawResponse `json:"draws"`
}

type AddDrawRequest struct {
	Contest int    `json:"contest"`
	Date    string `json:"date"` // DD/MM/YYYY, optional
	Numbers []int  `json:"numbers"`
}

type AddDrawResponse struct {
	Inserted bool `json:"inserted"`
}

type KPIResponse struct {
	GameName      string `json:"game_name"`
	TotalContests int    `json:"total_contests"`
	FirstContest  int    `json:"first_contest"`
	LastContest   int    `json:"last_contest"`
	FirstDate     string `json:"first_date,omitempty"`
	LastDate      string `json:"last_date,omitempty"`
	LastNumbers   []int  `json:"last_numbers"`
}

type SyncResponse struct {
	NewDraws int `json:"new_draws"`
}
