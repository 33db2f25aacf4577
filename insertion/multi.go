// File: multi.go
// Role: Multi-job search (§4.5 "Multi"): try every permitted permutation of
// parts, greedily placing each part in turn against a speculative route copy
// so later parts see the state updates earlier parts caused.
package insertion

import "github.com/katalvlaran/vrpcore/core"

func addVectors(a, b []float64) []float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		if i < len(a) {
			out[i] += a[i]
		}
		if i < len(b) {
			out[i] += b[i]
		}
	}

	return out
}

// EvaluateMultiRoute searches rc for a feasible placement of every part of
// job, trying each permitted permutation in turn.
func EvaluateMultiRoute(ic *core.InsertionContext, rc *core.RouteContext, job *core.Multi) Result {
	var best *Success

	for perm := range job.Permutations() {
		trial := rc.Clone()
		placements := make([]PlacedActivity, 0, len(perm))
		var cost []float64
		feasible := true
		var failure *core.ConstraintViolation

		for _, partIdx := range perm {
			if partIdx < 0 || partIdx >= len(job.Parts) {
				feasible = false

				break
			}
			single := job.Parts[partIdx]
			res := EvaluateSingleRoute(ic, trial, job, single)
			if !res.Ok() {
				feasible = false
				failure = &core.ConstraintViolation{Code: res.Failure.Code, Stopped: res.Failure.Stopped}

				break
			}
			placed := res.Success.Activities[0]
			trial.Route.Tour.InsertAt(placed.Index, placed.Activity)
			trial.State.MarkStale()
			ic.Problem.Goal.AcceptRouteState(trial)

			placements = append(placements, placed)
			cost = addVectors(cost, res.Success.Cost)
		}

		if !feasible {
			if failure != nil && failure.Stopped {
				return Result{Failure: &Failure{Code: failure.Code, Stopped: true, Job: job}}
			}

			continue
		}

		if best == nil || compareCost(cost, best.Cost) < 0 {
			best = &Success{Cost: cost, Job: job, Actor: rc.Route.Actor, Activities: placements}
		}
	}

	if best != nil {
		return Result{Success: best}
	}

	return Result{Failure: &Failure{Code: core.ReasonUnreachable, Job: job}}
}
