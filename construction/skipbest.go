// File: skipbest.go
// Role: Skip-best recreator (§4.6) — picks the 2nd- or n-th-best insertion
// instead of the best with some probability, to avoid always committing
// greedily to rank 0.
package construction

import "github.com/katalvlaran/vrpcore/core"

// NewSkipBest returns a recreator that, with probability skipProb, advances
// past the best candidate to the n-th best (n drawn uniformly from
// [1, maxSkip]).
func NewSkipBest(skipProb float64, maxSkip int) Recreator {
	if maxSkip < 1 {
		maxSkip = 1
	}

	return Strategy{
		Name: "skip_best",
		Select: func(env *core.Environment, ranked []candidate) int {
			if len(ranked) <= 1 || env.Random.Float64() >= skipProb {
				return 0
			}
			skip := 1 + env.Random.Intn(maxSkip)
			if skip >= len(ranked) {
				skip = len(ranked) - 1
			}

			return skip
		},
	}
}
