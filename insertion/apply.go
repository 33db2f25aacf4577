// File: apply.go
// Role: Applying a Success (§4.5 "Applying success mutates the route in
// place, recomputes state, moves the job out of required/unassigned, and
// marks the route stale").
package insertion

import "github.com/katalvlaran/vrpcore/core"

// Apply commits success to ic's solution: opens a fresh route if needed,
// inserts every placed activity, refreshes route state, and updates
// solution-level bookkeeping.
func Apply(ic *core.InsertionContext, success *Success) {
	rc := ic.Solution.RouteFor(success.Actor)
	if rc == nil {
		rc = core.NewRouteContext(core.NewRoute(success.Actor))
		ic.Solution.Routes = append(ic.Solution.Routes, rc)
		ic.Solution.Registry.MarkUsed(success.Actor)
	}

	for _, placed := range success.Activities {
		rc.Route.Tour.InsertAt(placed.Index, placed.Activity)
	}
	rc.State.MarkStale()
	ic.Problem.Goal.AcceptRouteState(rc)

	routeIndex := -1
	for i, candidate := range ic.Solution.Routes {
		if candidate == rc {
			routeIndex = i

			break
		}
	}
	ic.Problem.Goal.AcceptInsertion(ic.Solution, routeIndex, success.Job)
	ic.Solution.MarkAssigned(success.Job)
}
