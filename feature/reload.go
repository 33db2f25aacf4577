// File: reload.go
// Role: Reload feature (§4.4, vehicle shifts/multi-trip per SPEC_FULL.md
// §4.4) — a vehicle-bound marker job, described by the core.RouteIntervals
// that Intervals returns. A shared-reload variant caps total reloaded
// quantity per shared resource across every vehicle drawing from it. The
// feature keeps no per-route state, and a reload marker does not reset the
// capacity feature's running load, which spans the whole route.
package feature

import (
	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/goal"
)

type reloadFeature struct {
	capacityKey core.StateKey
	// sharedUsed tracks cumulative reloaded quantity per shared resource name,
	// across the whole solution (not per route), so a cap can be enforced
	// globally (§4.4 "shared-reload variant").
	sharedUsed map[string]core.Load
	sharedCap  map[string]core.Load
}

// NewReload returns the Reload feature. sharedCap maps a shared-resource name
// to its total cap across every vehicle drawing from it; pass nil for
// unshared reloads.
func NewReload(keys *core.StateKeyRegistry, sharedCap map[string]core.Load) goal.Feature {
	f := &reloadFeature{
		capacityKey: keys.Register("feature.reload.capacity"),
		sharedUsed:  make(map[string]core.Load),
		sharedCap:   sharedCap,
	}

	return goal.Feature{Name: "reload", Constraint: f, State: f}
}

// Intervals returns the core.RouteIntervals marking reload jobs as interval
// boundaries. No feature in this package consumes it; capacity iterates
// across the whole route.
func (f *reloadFeature) Intervals() core.RouteIntervals {
	ri := core.DefaultRouteIntervals()
	ri.IsMarkerJob = func(job *core.Single) bool {
		return job != nil && job.Dimens.GetActivityType() == core.ActivityReload
	}
	ri.IsMarkerAssignable = func(rc *core.RouteContext, job *core.Single) bool {
		vehicleID, shiftIndex, bound := job.Dimens.GetVehicleBinding()

		return !bound || (vehicleID == rc.Route.Actor.Vehicle.VehicleID() && shiftIndex == rc.Route.Actor.ShiftIndex)
	}

	return ri
}

func (f *reloadFeature) Evaluate(mc core.MoveContext) *core.ConstraintViolation {
	if mc.Activity == nil || mc.Activity.Target == nil || mc.Activity.Target.Job == nil {
		return nil
	}
	job := mc.Activity.Target.Job
	if job.Dimens.GetActivityType() != core.ActivityReload {
		return nil
	}
	resource, ok := job.Dimens.GetString(core.DimenSharedResource)
	if !ok {
		return nil
	}
	demand, ok := job.Dimens.GetDemand()
	if !ok {
		return nil
	}
	resourceCap, ok := f.sharedCap[resource]
	if !ok {
		return nil
	}
	used := f.sharedUsed[resource]
	if used == nil {
		used = demand.Pickup.Total().Sub(demand.Pickup.Total()) // zero of the right type
	}
	if !used.Add(demand.Pickup.Total()).CanFit(resourceCap) {
		return &core.ConstraintViolation{Code: core.ReasonReloadResource, Stopped: true}
	}

	return nil
}

func (f *reloadFeature) AcceptInsertion(sc *core.SolutionContext, routeIndex int, job core.Job) {
	if job == nil {
		return
	}
	singles := job.AllSingles()
	if len(singles) == 0 || singles[0].Dimens.GetActivityType() != core.ActivityReload {
		return
	}
	dimens := singles[0].Dimens
	resource, ok := dimens.GetString(core.DimenSharedResource)
	if !ok {
		return
	}
	demand, ok := dimens.GetDemand()
	if !ok {
		return
	}
	used := f.sharedUsed[resource]
	if used == nil {
		used = demand.Pickup.Total().Sub(demand.Pickup.Total())
	}
	f.sharedUsed[resource] = used.Add(demand.Pickup.Total())
}

func (f *reloadFeature) AcceptRouteState(*core.RouteContext) {}

func (f *reloadFeature) AcceptSolutionState(*core.SolutionContext) {}
