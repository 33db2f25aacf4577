// File: perturbation.go
// Role: Perturbation recreator (§4.6) — applies random ± noise to the cost of
// each evaluation candidate before ranking, so the construction order varies
// across runs with different PRNG seeds without ever accepting an infeasible
// move.
package construction

import "github.com/katalvlaran/vrpcore/core"

// NewPerturbation returns a recreator that multiplies each candidate's
// leading cost component by a factor uniformly drawn from
// [1-amplitude, 1+amplitude].
func NewPerturbation(amplitude float64) Recreator {
	return Strategy{
		Name: "perturbation",
		AdjustCost: func(env *core.Environment, _ core.Job, cost []float64) []float64 {
			if len(cost) == 0 {
				return cost
			}
			noise := 1 + amplitude*(2*env.Random.Float64()-1)
			out := append([]float64(nil), cost...)
			out[0] *= noise

			return out
		},
	}
}
