// File: nearestfarthest.go
// Role: Nearest/Farthest recreators (§4.6) — bias job selection by the
// distance component of its best insertion cost rather than full lexicographic
// cost.
package construction

import "github.com/katalvlaran/vrpcore/core"

// NewNearest returns a recreator that, each round, inserts whichever required
// job's cheapest feasible insertion has the smallest leading cost component
// (closest to its nearest route).
func NewNearest() Recreator {
	return Strategy{
		Name: "nearest",
		Select: func(_ *core.Environment, ranked []candidate) int {
			best := 0
			for i := 1; i < len(ranked); i++ {
				if leading(ranked[i].adjustedCost) < leading(ranked[best].adjustedCost) {
					best = i
				}
			}

			return best
		},
	}
}

// NewFarthest returns a recreator that inserts whichever required job's
// cheapest feasible insertion has the largest leading cost component first
// (farthest-insertion construction, often better at avoiding crossed routes).
func NewFarthest() Recreator {
	return Strategy{
		Name: "farthest",
		Select: func(_ *core.Environment, ranked []candidate) int {
			best := 0
			for i := 1; i < len(ranked); i++ {
				if leading(ranked[i].adjustedCost) > leading(ranked[best].adjustedCost) {
					best = i
				}
			}

			return best
		},
	}
}

func leading(cost []float64) float64 {
	if len(cost) == 0 {
		return 0
	}

	return cost[0]
}
