// File: regret.go
// Role: Regret-k recreator (§4.6) — for each required job, compute its best
// insertion per route, sum (cost_k − cost_1) over the k cheapest routes, and
// insert the job with the largest regret first: the one that gets most
// expensive to delay.
package construction

import (
	"sort"

	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/insertion"
)

type regretRecreator struct {
	k int
}

// NewRegret returns the Regret-k recreator, considering the k cheapest
// candidate routes per job, drawn from every open route plus one fresh route
// per available actor.
func NewRegret(k int) Recreator {
	if k < 1 {
		k = 1
	}

	return regretRecreator{k: k}
}

type routeCandidate struct {
	rc   *core.RouteContext
	cost []float64
}

func (r regretRecreator) bestPerRoute(ic *core.InsertionContext, job core.Job) []routeCandidate {
	var out []routeCandidate
	for _, rc := range ic.Solution.Routes {
		res := insertion.EvaluateRoute(ic, rc, job)
		if res.Ok() {
			out = append(out, routeCandidate{rc: rc, cost: res.Success.Cost})
		}
	}
	for _, actor := range ic.Solution.Registry.Available() {
		candidate := core.NewRouteContext(core.NewRoute(actor))
		ic.Problem.Goal.AcceptRouteState(candidate)
		res := insertion.EvaluateRoute(ic, candidate, job)
		if res.Ok() {
			out = append(out, routeCandidate{rc: candidate, cost: res.Success.Cost})
		}
	}
	sort.Slice(out, func(i, j int) bool { return compareCost(out[i].cost, out[j].cost) < 0 })

	return out
}

func regretScore(candidates []routeCandidate, k int) float64 {
	if len(candidates) == 0 {
		return 0
	}
	best := leading(candidates[0].cost)
	var score float64
	limit := k
	if limit > len(candidates) {
		limit = len(candidates)
	}
	for i := 1; i < limit; i++ {
		score += leading(candidates[i].cost) - best
	}

	return score
}

// Recreate implements Recreator.
func (r regretRecreator) Recreate(ic *core.InsertionContext) {
	for len(ic.Solution.Required) > 0 {
		jobs := append([]core.Job(nil), ic.Solution.Required...)

		type evaluated struct {
			job        core.Job
			candidates []routeCandidate
			regret     float64
		}
		var evals []evaluated
		for _, job := range jobs {
			candidates := r.bestPerRoute(ic, job)
			if len(candidates) == 0 {
				continue
			}
			evals = append(evals, evaluated{job: job, candidates: candidates, regret: regretScore(candidates, r.k)})
		}

		if len(evals) == 0 {
			for _, job := range jobs {
				ic.Solution.MarkUnassigned(job, core.UnknownReason)
			}

			return
		}

		sort.SliceStable(evals, func(i, j int) bool {
			if evals[i].regret != evals[j].regret {
				return evals[i].regret > evals[j].regret
			}

			return evals[i].job.JobID() < evals[j].job.JobID()
		})

		chosen := evals[0]
		res := insertion.EvaluateRoute(ic, chosen.candidates[0].rc, chosen.job)
		if !res.Ok() {
			ic.Solution.MarkUnassigned(chosen.job, core.UnassignedReason{Code: res.Failure.Code, Description: core.ReasonDescriptions[res.Failure.Code]})

			continue
		}
		insertion.Apply(ic, res.Success)
	}
}
