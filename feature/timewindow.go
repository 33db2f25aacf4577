// File: timewindow.go
// Role: Time-window feature (§4.4) — backward "latest feasible arrival" pass,
// forward scheduling on accept, and the two-sided insertion check the spec
// describes: does the target fit before its own window closes, and does
// inserting it still let the rest of the route make its windows.
package feature

import (
	"math"

	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/goal"
)

type timeWindowFeature struct {
	latestKey core.StateKey
	transport core.TransportCost
}

// NewTimeWindow returns the time-window feature over transport.
func NewTimeWindow(keys *core.StateKeyRegistry, transport core.TransportCost) goal.Feature {
	f := &timeWindowFeature{latestKey: keys.Register("feature.timewindow.latest"), transport: transport}

	return goal.Feature{Name: "time_window", Constraint: f, State: f}
}

func shiftStart(rc *core.RouteContext) float64 {
	return rc.Route.Actor.Shift.StartTimes.Resolve(0).Start
}

func placeWindow(p core.Place, shiftStartAt float64) core.TimeWindow {
	windows := p.ResolvedWindows(shiftStartAt)
	if len(windows) == 0 {
		return core.UnboundedTimeWindow()
	}

	return windows[0]
}

// Evaluate implements goal.FeatureConstraint.
func (f *timeWindowFeature) Evaluate(mc core.MoveContext) *core.ConstraintViolation {
	if mc.Activity == nil || mc.Activity.Target == nil {
		return nil
	}
	act := mc.Activity
	rc := act.Route
	profile := rc.Route.Actor.Vehicle.Profile
	start := shiftStart(rc)

	prevDeparture := start
	prevLoc := rc.Route.Actor.Shift.Start
	if act.Prev != nil {
		prevDeparture = act.Prev.Schedule.Departure
		prevLoc = act.Prev.Place.Location
	}

	travel := f.transport.Duration(profile, prevLoc, act.Target.Place.Location, prevDeparture)
	arrival := prevDeparture + travel
	window := placeWindow(act.Target.Place, start)
	if arrival > window.End {
		return &core.ConstraintViolation{Code: core.ReasonTimeWindow}
	}

	begin := arrival
	if window.Start > begin {
		begin = window.Start
	}
	departure := begin + act.Target.Place.Duration

	if act.Next != nil {
		nextTravel := f.transport.Duration(profile, act.Target.Place.Location, act.Next.Place.Location, departure)
		nextArrival := departure + nextTravel
		if latest, ok := core.GetVectorAt[float64](rc.State, f.latestKey, act.Index); ok {
			if nextArrival > latest {
				return &core.ConstraintViolation{Code: core.ReasonTimeWindow, Stopped: true}
			}
		}
	}

	return nil
}

// AcceptInsertion implements goal.FeatureState; full recompute happens in
// AcceptRouteState.
func (f *timeWindowFeature) AcceptInsertion(*core.SolutionContext, int, core.Job) {}

// AcceptRouteState implements goal.FeatureState: backward pass for latest
// feasible arrival, then a forward pass that stamps Schedule.Arrival/Departure
// on every activity.
func (f *timeWindowFeature) AcceptRouteState(rc *core.RouteContext) {
	activities := rc.Route.Tour.Activities
	n := len(activities)
	if n == 0 {
		return
	}
	profile := rc.Route.Actor.Vehicle.Profile
	start := shiftStart(rc)

	latest := make([]interface{}, n)
	last := math.Inf(1)
	if rc.Route.Actor.Shift.HasEnd {
		last = rc.Route.Actor.Shift.EndTimes.Resolve(start).End
	}
	latest[n-1] = last
	for i := n - 2; i >= 0; i-- {
		nextLatest := latest[i+1].(float64)
		travel := f.transport.Duration(profile, activities[i].Place.Location, activities[i+1].Place.Location, 0)
		window := placeWindow(activities[i].Place, start)
		candidate := nextLatest - travel - activities[i].Place.Duration
		if window.End < candidate {
			latest[i] = window.End
		} else {
			latest[i] = candidate
		}
	}
	rc.State.SetVector(f.latestKey, latest)

	departure := start
	loc := rc.Route.Actor.Shift.Start
	for i := range activities {
		travel := 0.0
		if i > 0 {
			travel = f.transport.Duration(profile, loc, activities[i].Place.Location, departure)
		}
		arrival := departure + travel
		window := placeWindow(activities[i].Place, start)
		begin := arrival
		if window.Start > begin {
			begin = window.Start
		}
		activities[i].Schedule = core.Schedule{Arrival: arrival, Departure: begin + activities[i].Place.Duration}
		departure = activities[i].Schedule.Departure
		loc = activities[i].Place.Location
	}
}

// AcceptSolutionState implements goal.FeatureState; time windows have no
// solution-wide bookkeeping.
func (f *timeWindowFeature) AcceptSolutionState(*core.SolutionContext) {}
