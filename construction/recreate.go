// File: recreate.go
// Role: The shared per-round loop every recreator strategy configures (§4.6):
// evaluate every required job's best any-route insertion, rank/select among
// them, apply the winner, repeat until Required is empty or nothing is
// feasible.
package construction

import (
	"sort"

	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/insertion"
)

// Recreator completes a partial solution.
type Recreator interface {
	Recreate(ic *core.InsertionContext)
}

// candidate is one required job's evaluated insertion this round.
type candidate struct {
	job          core.Job
	result       insertion.Result
	adjustedCost []float64
}

// Strategy is the shared recreator engine, parameterized by how it adjusts a
// raw cost vector before ranking (AdjustCost) and which ranked candidate it
// picks each round (Select). A nil field keeps the corresponding default:
// AdjustCost identity, Select always the first (cheapest) ranked candidate —
// together those defaults are exactly the Cheapest recreator (§4.6).
type Strategy struct {
	Name       string
	AdjustCost func(env *core.Environment, job core.Job, cost []float64) []float64
	Select     func(env *core.Environment, ranked []candidate) int
}

// Recreate implements Recreator.
func (s Strategy) Recreate(ic *core.InsertionContext) {
	for len(ic.Solution.Required) > 0 {
		jobs := append([]core.Job(nil), ic.Solution.Required...)
		ranked := make([]candidate, 0, len(jobs))
		var lastFailure *insertion.Failure

		for _, job := range jobs {
			res := insertion.EvaluateAnyRoute(ic, job)
			if !res.Ok() {
				lastFailure = res.Failure

				continue
			}
			cost := res.Success.Cost
			if s.AdjustCost != nil {
				cost = s.AdjustCost(ic.Environment, job, cost)
			}
			ranked = append(ranked, candidate{job: job, result: res, adjustedCost: cost})
		}

		if len(ranked) == 0 {
			reason := core.UnknownReason
			if lastFailure != nil {
				reason = core.UnassignedReason{Code: lastFailure.Code, Description: core.ReasonDescriptions[lastFailure.Code]}
			}
			for _, job := range jobs {
				ic.Solution.MarkUnassigned(job, reason)
			}

			return
		}

		sort.SliceStable(ranked, func(i, j int) bool {
			if c := compareCost(ranked[i].adjustedCost, ranked[j].adjustedCost); c != 0 {
				return c < 0
			}

			return ranked[i].job.JobID() < ranked[j].job.JobID()
		})

		idx := 0
		if s.Select != nil {
			idx = s.Select(ic.Environment, ranked)
		}
		if idx < 0 || idx >= len(ranked) {
			idx = 0
		}

		chosen := ranked[idx]
		insertion.Apply(ic, chosen.result.Success)
	}
}

func compareCost(a, b []float64) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	return 0
}
