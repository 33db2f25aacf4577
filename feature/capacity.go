// File: capacity.go
// Role: Capacity feature (§4.4) — rejects insertions that would push any
// activity's carried load past the vehicle's capacity.
package feature

import "github.com/katalvlaran/vrpcore/core"
import "github.com/katalvlaran/vrpcore/goal"

type capacityFeature struct {
	stateKey core.StateKey
}

// NewCapacity returns the Capacity feature: a constraint checking every
// insertion against the vehicle's capacity, and a state updater maintaining
// the per-activity running load.
func NewCapacity(keys *core.StateKeyRegistry) goal.Feature {
	f := &capacityFeature{stateKey: keys.Register("feature.capacity.load")}

	return goal.Feature{Name: "capacity", Constraint: f, State: f}
}

// Evaluate implements goal.FeatureConstraint.
func (f *capacityFeature) Evaluate(mc core.MoveContext) *core.ConstraintViolation {
	if mc.Activity == nil || mc.Activity.Target == nil || mc.Activity.Target.Job == nil {
		return nil
	}
	act := mc.Activity
	capacity := act.Route.Route.Actor.Vehicle.Capacity
	if capacity == nil {
		return nil
	}
	demand, ok := act.Target.Job.Dimens.GetDemand()
	if !ok || demand.IsEmpty() {
		return nil
	}
	zero := capacity.Sub(capacity)
	net := partTotal(demand.Pickup, zero).Sub(partTotal(demand.Delivery, zero))

	prev := f.loadBefore(act.Route, act.Index, capacity)
	if !prev.Add(net).CanFit(capacity) {
		return &core.ConstraintViolation{Code: core.ReasonCapacity}
	}
	for i := act.Index; i < act.Route.Route.Tour.Len(); i++ {
		cur, ok := core.GetVectorAt[core.Load](act.Route.State, f.stateKey, i)
		if !ok {
			continue
		}
		if !cur.Add(net).CanFit(capacity) {
			return &core.ConstraintViolation{Code: core.ReasonCapacity, Stopped: true}
		}
	}

	return nil
}

// loadBefore returns the cached running load immediately before idx, or the
// capacity's zero value if idx is the first position.
func (f *capacityFeature) loadBefore(rc *core.RouteContext, idx int, capacity core.Load) core.Load {
	if idx <= 0 {
		return capacity.Sub(capacity)
	}
	if v, ok := core.GetVectorAt[core.Load](rc.State, f.stateKey, idx-1); ok {
		return v
	}

	return capacity.Sub(capacity)
}

// AcceptInsertion implements goal.FeatureState; the running-load vector is
// fully recomputed by AcceptRouteState, so nothing is needed here.
func (f *capacityFeature) AcceptInsertion(*core.SolutionContext, int, core.Job) {}

// AcceptRouteState implements goal.FeatureState: recomputes the per-activity
// running-load vector by a single forward pass.
func (f *capacityFeature) AcceptRouteState(rc *core.RouteContext) {
	capacity := rc.Route.Actor.Vehicle.Capacity
	if capacity == nil {
		return
	}
	zero := capacity.Sub(capacity)
	load := zero
	vec := make([]interface{}, rc.Route.Tour.Len())
	for i, a := range rc.Route.Tour.Activities {
		if a.Job != nil {
			if demand, ok := a.Job.Dimens.GetDemand(); ok {
				load = load.Add(partTotal(demand.Pickup, zero)).Sub(partTotal(demand.Delivery, zero))
			}
		}
		vec[i] = load
	}
	rc.State.SetVector(f.stateKey, vec)
}

// AcceptSolutionState implements goal.FeatureState; capacity has no
// solution-wide bookkeeping.
func (f *capacityFeature) AcceptSolutionState(*core.SolutionContext) {}

// partTotal returns part.Total(), or zero when the part carries no load.
func partTotal(part core.LoadPart, zero core.Load) core.Load {
	if t := part.Total(); t != nil {
		return t
	}

	return zero
}
