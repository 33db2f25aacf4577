// File: optimizer.go
// Role: Ties the 2-opt/3-opt search to the repair pass and the ImprovementOnly
// guard (§4.10), and runs the per-route search concurrently across a
// solution's routes (§5 "LKH optimizes each route of a solution in
// parallel") — the search itself only reads the route's own activities and
// the (read-only, shared) transport cost, so it's safe off the main
// goroutine; repair touches shared goal state and runs serially afterward.
package lkh

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vrpcore/core"
)

// Optimizer runs the route-internal 2-opt/3-opt search.
type Optimizer struct {
	transport       core.TransportCost
	maxSwaps        int
	improvementOnly bool
}

// NewOptimizer returns an Optimizer. maxSwaps caps the improving-move depth:
// 2 runs 2-opt only, >=3 also runs the 3-opt (or-opt) pass. improvementOnly
// keeps a route's original order whenever the optimized route would carry
// fewer jobs.
func NewOptimizer(transport core.TransportCost, maxSwaps int, improvementOnly bool) *Optimizer {
	if maxSwaps < 2 {
		maxSwaps = 2
	}

	return &Optimizer{transport: transport, maxSwaps: maxSwaps, improvementOnly: improvementOnly}
}

// Optimize improves every route of ic.Solution.
func (o *Optimizer) Optimize(ic *core.InsertionContext) {
	routes := ic.Solution.Routes
	orders := make([][]int, len(routes))

	var group errgroup.Group
	for i, rc := range routes {
		i, rc := i, rc
		group.Go(func() error {
			orders[i] = o.searchRoute(rc)

			return nil
		})
	}
	_ = group.Wait() // searchRoute never errors; Wait only provides the join point

	idx := singleIndex(ic.Problem)
	for i, rc := range routes {
		order := orders[i]
		if order == nil {
			continue
		}
		o.applyAndRepair(ic, rc, idx, order)
	}
	ic.Problem.Goal.AcceptSolutionState(ic.Solution)
}

// OptimizeRoute runs the search and repair for a single route; exposed for
// callers that want to optimize one route without touching the rest of the
// solution (e.g. right after a ruin+recreate pass only disturbed one route).
func (o *Optimizer) OptimizeRoute(ic *core.InsertionContext, rc *core.RouteContext) {
	order := o.searchRoute(rc)
	if order == nil {
		return
	}
	o.applyAndRepair(ic, rc, singleIndex(ic.Problem), order)
	ic.Problem.Goal.AcceptSolutionState(ic.Solution)
}

func (o *Optimizer) applyAndRepair(ic *core.InsertionContext, rc *core.RouteContext, idx map[*core.Single]core.Job, order []int) {
	var original []core.Activity
	if o.improvementOnly {
		original = append([]core.Activity(nil), rc.Route.Tour.Activities...)
	}

	before := len(rc.Route.Tour.JobActivityIndices())
	applyOrder(rc.Route.Tour, order)
	rc.State.MarkStale()
	extracted := repairRoute(ic, rc, idx)
	after := len(rc.Route.Tour.JobActivityIndices())

	if o.improvementOnly && after < before {
		rc.Route.Tour.Activities = original
		rc.State.MarkStale()
		ic.Problem.Goal.AcceptRouteState(rc)

		return
	}
	for _, job := range extracted {
		requeue(ic, job)
	}
}

// searchRoute runs the improving-move loop over rc's own adjacency matrix,
// touching nothing beyond rc's own activities and the shared (read-only)
// transport cost — safe to call concurrently across distinct routes.
func (o *Optimizer) searchRoute(rc *core.RouteContext) []int {
	acts := rc.Route.Tour.Activities
	n := len(acts)
	if n < 4 {
		return nil
	}

	profile := rc.Route.Actor.Vehicle.Profile
	dist := buildMatrix(acts, o.transport, profile)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	improved := true
	for improved {
		improved = false
		if twoOptPass(order, dist) {
			improved = true
		}
		if o.maxSwaps >= 3 && threeOptPass(order, dist, 3) {
			improved = true
		}
	}

	return order
}

func buildMatrix(acts []core.Activity, transport core.TransportCost, profile core.Profile) [][]float64 {
	n := len(acts)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = transport.DistanceApprox(profile, acts[i].Place.Location, acts[j].Place.Location)
		}
	}

	return m
}

// applyOrder rewrites tour's activities into the permutation order describes.
func applyOrder(tour *core.Tour, order []int) {
	original := append([]core.Activity(nil), tour.Activities...)
	for i, src := range order {
		tour.Activities[i] = original[src]
	}
}
