// File: anyroute.go
// Role: "Any route" search (§4.5): try every open route plus a fresh route
// per available actor, keep the minimum.
package insertion

import "github.com/katalvlaran/vrpcore/core"

// EvaluateRoute searches rc for job (dispatching to EvaluateSingleRoute or
// EvaluateMultiRoute by concrete type), first checking the route-level
// constraint gate (used by e.g. Skills/Locking to reject the whole route
// before searching positions).
func EvaluateRoute(ic *core.InsertionContext, rc *core.RouteContext, job core.Job) Result {
	routeMC := core.MoveContext{Route: &core.RouteMoveContext{Solution: ic.Solution, Route: rc, Job: job}}
	if violation := ic.Problem.Goal.Evaluate(routeMC); violation != nil {
		return Result{Failure: &Failure{Code: violation.Code, Stopped: violation.Stopped, Job: job}}
	}

	return evaluateRoute(ic, rc, job)
}

func evaluateRoute(ic *core.InsertionContext, rc *core.RouteContext, job core.Job) Result {
	if multi, ok := job.(*core.Multi); ok {
		return EvaluateMultiRoute(ic, rc, multi)
	}
	single := job.(*core.Single)

	return EvaluateSingleRoute(ic, rc, job, single)
}

// EvaluateAnyRoute tries job against every route already open in ic.Solution,
// plus one fresh route per available actor, and returns the cheapest feasible
// placement across all of them.
func EvaluateAnyRoute(ic *core.InsertionContext, job core.Job) Result {
	var best *Success
	var lastFailure *Failure

	for _, rc := range ic.Solution.Routes {
		res := EvaluateRoute(ic, rc, job)
		if !res.Ok() {
			lastFailure = res.Failure

			continue
		}
		if best == nil || compareCost(res.Success.Cost, best.Cost) < 0 {
			best = res.Success
		}
	}

	for _, actor := range ic.Solution.Registry.Available() {
		candidateRoute := core.NewRouteContext(core.NewRoute(actor))
		ic.Problem.Goal.AcceptRouteState(candidateRoute)

		res := EvaluateRoute(ic, candidateRoute, job)
		if !res.Ok() {
			lastFailure = res.Failure

			continue
		}
		if best == nil || compareCost(res.Success.Cost, best.Cost) < 0 {
			best = res.Success
		}
	}

	if best != nil {
		return Result{Success: best}
	}
	if lastFailure != nil {
		return Result{Failure: lastFailure}
	}

	return Result{Failure: &Failure{Code: core.ReasonUnreachable, Job: job}}
}
