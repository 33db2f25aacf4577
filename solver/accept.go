// File: accept.go
// Role: §5 "Per-solution accept_solution_state iterates over stale routes in
// parallel" — recompute every stale route's cached feature state concurrently
// (each goroutine only touches its own RouteContext), then run the
// solution-wide acceptance pass serially.
package solver

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vrpcore/core"
)

// acceptSolutionState recomputes ic.Solution's stale routes in parallel and
// then calls the goal's solution-wide AcceptSolutionState.
func acceptSolutionState(ic *core.InsertionContext) {
	stale := ic.Solution.StaleRoutes()

	var group errgroup.Group
	for _, rc := range stale {
		rc := rc
		group.Go(func() error {
			ic.Problem.Goal.AcceptRouteState(rc)

			return nil
		})
	}
	_ = group.Wait()

	ic.Problem.Goal.AcceptSolutionState(ic.Solution)
}
