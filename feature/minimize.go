// File: minimize.go
// Role: The five simplest objectives (§4.4): total distance, duration and cost,
// tour count, and unassigned-job count. None of them carry state; they only
// read the solution as it stands. Only NewMinimizeTours may also install a
// constraint.
package feature

import (
	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/goal"
)

type transportObjective struct {
	transport core.TransportCost
	cost      core.ActivityCost
	// metric selects which of distance/duration/weighted-cost this instance
	// reports; kept as one type with a selector rather than three near-
	// identical structs.
	metric func(route *core.Route, transport core.TransportCost, cost core.ActivityCost) float64
}

func (o transportObjective) Fitness(ic *core.InsertionContext) float64 {
	var total float64
	for _, rc := range ic.Solution.Routes {
		total += o.metric(rc.Route, o.transport, o.cost)
	}

	return total
}

func (o transportObjective) Estimate(mc core.MoveContext) float64 {
	if mc.Activity == nil {
		return 0
	}
	act := mc.Activity
	profile := act.Route.Route.Actor.Vehicle.Profile
	prevLoc, prevTime := act.Route.Route.Actor.Shift.Start, 0.0
	if act.Prev != nil {
		prevLoc, prevTime = act.Prev.Place.Location, act.Prev.Schedule.Departure
	}
	targetLoc := act.Target.Place.Location

	return o.transport.Distance(profile, prevLoc, targetLoc, prevTime)
}

func routeDistance(route *core.Route, transport core.TransportCost, _ core.ActivityCost) float64 {
	var total float64
	acts := route.Tour.Activities
	for i := 1; i < len(acts); i++ {
		total += transport.Distance(route.Actor.Vehicle.Profile, acts[i-1].Place.Location, acts[i].Place.Location, acts[i-1].Schedule.Departure)
	}

	return total
}

func routeDuration(route *core.Route, transport core.TransportCost, _ core.ActivityCost) float64 {
	acts := route.Tour.Activities
	if len(acts) == 0 {
		return 0
	}

	return acts[len(acts)-1].Schedule.Departure - acts[0].Schedule.Arrival
}

func routeCost(route *core.Route, transport core.TransportCost, activityCost core.ActivityCost) float64 {
	if route.IsEmpty() {
		return 0
	}
	costs := route.Actor.Vehicle.Costs
	total := costs.Fixed
	total += routeDistance(route, transport, activityCost) * costs.PerDistance
	total += routeDuration(route, transport, activityCost) * costs.PerDrivingTime
	for _, a := range route.Tour.Activities {
		total += activityCost.Cost(route.Actor, a, a.Schedule.Arrival)
	}

	return total
}

// NewMinimizeDistance returns the total-distance objective.
func NewMinimizeDistance(transport core.TransportCost, activityCost core.ActivityCost) goal.Feature {
	return goal.Feature{
		Name:      "minimize_distance",
		Objective: transportObjective{transport: transport, cost: activityCost, metric: routeDistance},
	}
}

// NewMinimizeDuration returns the total-duration objective.
func NewMinimizeDuration(transport core.TransportCost, activityCost core.ActivityCost) goal.Feature {
	return goal.Feature{
		Name:      "minimize_duration",
		Objective: transportObjective{transport: transport, cost: activityCost, metric: routeDuration},
	}
}

// NewMinimizeCost returns the weighted-cost objective (fixed + per-distance +
// per-driving-time + per-activity waiting/service cost).
func NewMinimizeCost(transport core.TransportCost, activityCost core.ActivityCost) goal.Feature {
	return goal.Feature{
		Name:      "minimize_cost",
		Objective: transportObjective{transport: transport, cost: activityCost, metric: routeCost},
	}
}

type tourCountObjective struct{}

func (tourCountObjective) Fitness(ic *core.InsertionContext) float64 {
	var count float64
	for _, rc := range ic.Solution.Routes {
		if !rc.Route.IsEmpty() {
			count++
		}
	}

	return count
}

func (tourCountObjective) Estimate(mc core.MoveContext) float64 {
	if mc.Route != nil && mc.Route.Route.Route.IsEmpty() {
		return 1
	}

	return 0
}

// tourCountConstraint forbids opening a new (empty) route when some other
// already-open route could absorb the job (§4.4 "optionally forbids opening a
// new route"). canAbsorb is supplied by the caller (the construction layer
// knows which routes it already attempted).
type tourCountConstraint struct {
	canAbsorb func(job core.Job) bool
}

func (c tourCountConstraint) Evaluate(mc core.MoveContext) *core.ConstraintViolation {
	if mc.Route == nil || !mc.Route.Route.Route.IsEmpty() {
		return nil
	}
	if c.canAbsorb != nil && c.canAbsorb(mc.Route.Job) {
		return &core.ConstraintViolation{Code: core.ReasonMaxDistance}
	}

	return nil
}

// NewMinimizeTours returns the tour-count objective. If canAbsorb is non-nil
// it also installs the "no new route if an existing one could take the job"
// constraint.
func NewMinimizeTours(canAbsorb func(job core.Job) bool) goal.Feature {
	f := goal.Feature{Name: "minimize_tours", Objective: tourCountObjective{}}
	if canAbsorb != nil {
		f.Constraint = tourCountConstraint{canAbsorb: canAbsorb}
	}

	return f
}

type unassignedObjective struct{ weight float64 }

func (o unassignedObjective) Fitness(ic *core.InsertionContext) float64 {
	w := o.weight
	if w == 0 {
		w = 1
	}

	return w * float64(len(ic.Solution.Unassigned))
}

func (o unassignedObjective) Estimate(core.MoveContext) float64 { return 0 }

// NewMinimizeUnassigned returns the unassigned-job-count objective, weighted
// by weight (1 if zero).
func NewMinimizeUnassigned(weight float64) goal.Feature {
	return goal.Feature{Name: "minimize_unassigned", Objective: unassignedObjective{weight: weight}}
}
