package model

// ChiSquareResult is a goodness-of-fit test of the number distribution
// against the uniform expectation.
type ChiSquareResult struct {
	Statistic      float64
	PValue         float64
	DegreesFreedom int
	IsUniform      bool
	Interpretation string
}

// RunsTestResult checks the draw sequence for runs-based randomness.
type RunsTestResult struct {
	RunsObserved   int
	RunsExpected   float64
	ZScore         float64
	PValue         float64
	IsRandom       bool
	Interpretation string
}

// MonteCarloResult reports a simulation of random play. It exists to make the
// real odds tangible, never to suggest a way of beating them.
type MonteCarloResult struct {
	Simulations       int
	FullMatches       int
	OneOffMatches     int
	TwoOffMatches     int
	ThreeOffMatches   int
	SomeMatches       int
	NoMatches         int
	TotalCombinations int64
	Interpretation    string
}
