package model

// Strategy selects how the non-fixed numbers of a combination are drawn.
type Strategy string

const (
	// StrategyRandom samples uniformly from the eligible pool.
	StrategyRandom Strategy = "random"
	// StrategyBalanced targets an even mix of hot and cold numbers.
	StrategyBalanced Strategy = "balanced"
	// StrategyContrarian prefers numbers that are overdue to appear.
	StrategyContrarian Strategy = "contrarian"
)

// Valid reports whether the strategy tag is one of the known policies.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyRandom, StrategyBalanced, StrategyContrarian:
		return true
	}
	return false
}

// GenerationFilters constrains a single generation request. Immutable once
// handed to the generator.
type GenerationFilters struct {
	ExcludeLastDraw  bool
	ExcludeMostDrawn bool

	// Inclusive bounds on the even-number count of a combination.
	MinEvens int
	MaxEvens int

	// Inclusive bounds on the combination sum.
	MinSum int
	MaxSum int

	// FixedNumbers must appear in every generated combination.
	FixedNumbers []int

	Strategy Strategy
}

// GeneratedGame is one accepted combination with its descriptive metadata.
// Numbers are sorted ascending and the struct is never mutated after creation.
type GeneratedGame struct {
	Numbers   []int
	SumValue  int
	EvenCount int
	OddCount  int

	// Counts of numbers intersecting the historical classification sets at
	// creation time.
	DelayedCount int
	HotCount     int
	ColdCount    int

	// CompatibilityScore is a bounded [0,100] heuristic. It is purely
	// illustrative: every combination of distinct in-range numbers is
	// equally likely to be drawn, whatever the score says.
	CompatibilityScore float64

	GameSlug string
}
