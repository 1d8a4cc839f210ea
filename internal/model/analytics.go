package model

import "time"

// KPISummary is the headline view of one game's stored history.
type KPISummary struct {
	GameName      string
	TotalContests int
	FirstContest  int
	LastContest   int
	FirstDate     time.Time
	LastDate      time.Time
	LastNumbers   []int
}

// FrequencyEntry is the appearance count of one number, including numbers
// that never came up.
type FrequencyEntry struct {
	Number int
	Count  int
	// Percent of contests the number appeared in.
	Percent float64
}

// DelayStatus classifies how overdue a number is against its own mean gap.
type DelayStatus string

const (
	DelayNormal   DelayStatus = "normal"
	DelayWatch    DelayStatus = "watch"    // gap above 1.5x mean
	DelayCritical DelayStatus = "critical" // gap above 2x mean
)

// DelayEntry describes the current gap of one number.
type DelayEntry struct {
	Number      int
	LastContest int
	CurrentGap  int
	MeanGap     float64
	GapStdDev   float64
	Status      DelayStatus
}

// ParityBucket is how many historical draws had a given even count.
type ParityBucket struct {
	Evens   int
	Odds    int
	Count   int
	Percent float64
}

// SumStats summarizes the distribution of draw sums.
type SumStats struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    int
	Max    int
	Q1     float64
	Q3     float64
}

// NumberGroup is a pair or trio of numbers with its co-occurrence count.
type NumberGroup struct {
	Numbers []int
	Count   int
}

// GameComparison relates a user-chosen combination to the stored history.
type GameComparison struct {
	Numbers      []int
	Sum          int
	EvenCount    int
	OddCount     int
	ExactMatches int
	// NearMatches are historical draws sharing all but one number.
	NearMatches int
	// GoodMatches are historical draws sharing all but two numbers.
	GoodMatches int
	// Originality is the percentage of history the combination does NOT
	// resemble. Descriptive only.
	Originality float64
}
