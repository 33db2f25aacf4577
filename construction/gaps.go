// File: gaps.go
// Role: Gaps recreator (§4.6) — prefers jobs that fit into narrow time gaps
// first, by subtracting a bonus proportional to how tight the job's first
// place's time window is from its adjusted cost.
package construction

import (
	"math"

	"github.com/katalvlaran/vrpcore/core"
)

// NewGaps returns a recreator favoring jobs with the narrowest time windows.
func NewGaps() Recreator {
	return Strategy{
		Name: "gaps",
		AdjustCost: func(_ *core.Environment, job core.Job, cost []float64) []float64 {
			singles := job.AllSingles()
			if len(singles) == 0 || len(singles[0].Places) == 0 {
				return cost
			}
			windows := singles[0].Places[0].Times
			if len(windows) == 0 {
				return cost
			}
			width := windows[0].Resolve(0).End - windows[0].Resolve(0).Start
			if math.IsInf(width, 1) || width <= 0 {
				return cost
			}

			out := append([]float64(nil), cost...)
			if len(out) > 0 {
				out[0] -= 1 / width
			}

			return out
		},
	}
}
