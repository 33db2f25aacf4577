// File: recharge.go
// Role: Recharge feature (§4.4) — a vehicle-bound marker job that resets
// distance-since-charge; rejects a route whose distance since the last
// recharge (or route start) would exceed the vehicle's range. Time-aware
// transport snapshots are never merged across a recharge boundary (§9 Open
// Question, resolved): an interval may not span two different snapshot
// indices of transport.TimeAwareMatrix.
package feature

import (
	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/goal"
)

// SnapshotIndexer is the minimal surface recharge needs from a time-aware
// transport cost to enforce the no-merge-across-snapshots rule; satisfied by
// *transport.TimeAwareMatrix. A transport cost with a single, time-invariant
// snapshot may leave this nil.
type SnapshotIndexer interface {
	SnapshotIndexAt(profile core.Profile, departure float64) int
}

type rechargeFeature struct {
	distanceKey core.StateKey
	maxRange    float64
	transport   core.TransportCost
	snapshots   SnapshotIndexer
}

// NewRecharge returns the Recharge feature. maxRange is the vehicle's
// distance-since-charge ceiling; snapshots may be nil when transport is not
// time-aware.
func NewRecharge(keys *core.StateKeyRegistry, transport core.TransportCost, snapshots SnapshotIndexer, maxRange float64) goal.Feature {
	f := &rechargeFeature{
		distanceKey: keys.Register("feature.recharge.distance"),
		maxRange:    maxRange,
		transport:   transport,
		snapshots:   snapshots,
	}

	return goal.Feature{Name: "recharge", Constraint: f, State: f}
}

func (f *rechargeFeature) Evaluate(mc core.MoveContext) *core.ConstraintViolation {
	if mc.Activity == nil || mc.Activity.Target == nil {
		return nil
	}
	act := mc.Activity
	profile := act.Route.Route.Actor.Vehicle.Profile

	prevLoc := act.Route.Route.Actor.Shift.Start
	prevDeparture := 0.0
	prevDistance := 0.0
	if act.Prev != nil {
		prevLoc, prevDeparture = act.Prev.Place.Location, act.Prev.Schedule.Departure
		if d, ok := core.GetVectorAt[float64](act.Route.State, f.distanceKey, act.Index-1); ok {
			prevDistance = d
		}
	}

	leg := f.transport.Distance(profile, prevLoc, act.Target.Place.Location, prevDeparture)

	if f.snapshots != nil && act.Prev != nil {
		prevSnap := f.snapshots.SnapshotIndexAt(profile, prevDeparture)
		arrivalSnap := f.snapshots.SnapshotIndexAt(profile, prevDeparture+leg)
		if prevSnap != arrivalSnap {
			return &core.ConstraintViolation{Code: core.ReasonRecharge, Stopped: true}
		}
	}

	traveled := prevDistance + leg
	if act.Target.Job != nil && act.Target.Job.Dimens.GetActivityType() == core.ActivityRecharge {
		traveled = 0 // the recharge itself resets the counter
	}
	if traveled > f.maxRange {
		return &core.ConstraintViolation{Code: core.ReasonRecharge}
	}

	return nil
}

func (f *rechargeFeature) AcceptInsertion(*core.SolutionContext, int, core.Job) {}

func (f *rechargeFeature) AcceptRouteState(rc *core.RouteContext) {
	activities := rc.Route.Tour.Activities
	vec := make([]interface{}, len(activities))
	traveled := 0.0
	profile := rc.Route.Actor.Vehicle.Profile
	for i := 1; i < len(activities); i++ {
		leg := f.transport.Distance(profile, activities[i-1].Place.Location, activities[i].Place.Location, activities[i-1].Schedule.Departure)
		traveled += leg
		if activities[i].Job != nil && activities[i].Job.Dimens.GetActivityType() == core.ActivityRecharge {
			traveled = 0
		}
		vec[i] = traveled
	}
	if len(vec) > 0 {
		vec[0] = 0.0
	}
	rc.State.SetVector(f.distanceKey, vec)
}

func (f *rechargeFeature) AcceptSolutionState(*core.SolutionContext) {}
