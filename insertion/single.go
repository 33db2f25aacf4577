// File: single.go
// Role: Single-job, single-route search (§4.5 "Single into a concrete
// route"): enumerate insertion indices, evaluate, estimate, keep the minimum.
package insertion

import "github.com/katalvlaran/vrpcore/core"

// EvaluateSingleRoute searches every insertion index of rc for single, the
// one Single part being placed (a Multi calls this once per part via
// EvaluateMultiRoute). Returns the cheapest feasible position, or a Failure
// carrying the first Stopped violation seen, if any, else the last violation.
func EvaluateSingleRoute(ic *core.InsertionContext, rc *core.RouteContext, job core.Job, single *core.Single) Result {
	var best *Success
	var lastFailure *core.ConstraintViolation

	places := single.Places
	if len(places) == 0 {
		return Result{Failure: &Failure{Code: core.ReasonUnreachable, Job: job}}
	}

	activities := rc.Route.Tour.Activities
	for idx := 1; idx < len(activities); idx++ {
		for _, place := range places {
			candidate := core.Activity{Place: place, Job: single}
			mc := core.MoveContext{Activity: &core.ActivityMoveContext{
				Route:  rc,
				Index:  idx,
				Prev:   &activities[idx-1],
				Target: &candidate,
				Next:   &activities[idx],
			}}
			if violation := ic.Problem.Goal.Evaluate(mc); violation != nil {
				lastFailure = violation
				if violation.Stopped {
					return Result{Failure: &Failure{Code: violation.Code, Stopped: true, Job: job}}
				}

				continue
			}
			cost := ic.Problem.Goal.Estimate(mc)
			if best == nil || compareCost(cost, best.Cost) < 0 ||
				(compareCost(cost, best.Cost) == 0 && idx < best.Activities[0].Index) {
				best = &Success{
					Cost:       cost,
					Job:        job,
					Actor:      rc.Route.Actor,
					Activities: []PlacedActivity{{Activity: candidate, Index: idx}},
				}
			}
		}
	}

	if best != nil {
		return Result{Success: best}
	}
	if lastFailure != nil {
		return Result{Failure: &Failure{Code: lastFailure.Code, Stopped: lastFailure.Stopped, Job: job}}
	}

	return Result{Failure: &Failure{Code: core.ReasonUnreachable, Job: job}}
}
