// File: population.go
// Role: The shared Population contract (§4.9 "both expose the same interface
// to the loop") and the weight-vector contract Rosomaxa needs.
package population

import "github.com/katalvlaran/vrpcore/core"

// Population holds candidate solutions across generations, offering new
// ones a chance to join and sampling parents for the next mutation.
type Population interface {
	// Add offers ic to the population, returning whether it improved the
	// population (joined the front / a new SOM node / similar).
	Add(ic *core.InsertionContext) bool
	// Select samples up to m parents for the next generation.
	Select(m int, env *core.Environment) []*core.InsertionContext
	// Best returns the single best solution known, or nil if empty.
	Best() *core.InsertionContext
}

// WeightVector computes the N-dimensional point a solution occupies for
// Rosomaxa's SOM. The common case is a feature's normalized objective
// values; vrpcore ships FitnessWeights, which uses the raw Fitness vector
// un-normalized, leaving bound-aware normalization to a caller that knows
// the problem's objective ranges.
type WeightVector func(ic *core.InsertionContext) []float64

// FitnessWeights is the default WeightVector: ic's Fitness vector, as-is.
func FitnessWeights(ic *core.InsertionContext) []float64 {
	return ic.Problem.Goal.Fitness(ic)
}
