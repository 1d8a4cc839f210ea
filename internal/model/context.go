package model

import "sort"

// NumberSet is a set of lottery numbers.
type NumberSet map[int]bool

// NewNumberSet builds a set from a slice.
func NewNumberSet(numbers []int) NumberSet {
	set := make(NumberSet, len(numbers))
	for _, n := range numbers {
		set[n] = true
	}
	return set
}

// Sorted returns the set members in ascending order.
func (s NumberSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// HistoricalContext is a read-only snapshot of the draw history for one game.
// It is rebuilt whenever the history changes and must not be mutated during a
// generation call; concurrent requests each get their own copy of the maps.
type HistoricalContext struct {
	// Frequency maps every number to its historical appearance count.
	Frequency map[int]int

	// HotNumbers appear more often than mean + stdev/2 of the frequencies.
	HotNumbers NumberSet
	// ColdNumbers appear less often than mean - stdev/2.
	ColdNumbers NumberSet
	// DelayedNumbers have a current gap above 1.5x their own mean gap.
	DelayedNumbers NumberSet

	// LastDraw holds the numbers of the most recent contest.
	LastDraw NumberSet
	// TopDrawn holds the ten most frequent numbers.
	TopDrawn NumberSet

	AverageSum   float64
	AverageEvens float64

	// Contests is how many draws the snapshot was built from.
	Contests int
}

// EmptyContext returns the neutral snapshot used when no history exists.
// Generation still works against it, degrading to plain random selection.
func EmptyContext(ballCount int) HistoricalContext {
	return HistoricalContext{
		Frequency:      map[int]int{},
		HotNumbers:     NumberSet{},
		ColdNumbers:    NumberSet{},
		DelayedNumbers: NumberSet{},
		LastDraw:       NumberSet{},
		TopDrawn:       NumberSet{},
		AverageSum:     0,
		AverageEvens:   float64(ballCount) / 2,
	}
}
