// File: breaks.go
// Role: Breaks feature (§4.4) — optional breaks behave as vehicle-bound jobs
// that may be skipped without cost; required breaks are fixed consumption
// windows scheduling must account for. Route-state recomputation removes
// orphan breaks (those whose vehicle binding does not match the route's
// actor) from that route.
package feature

import (
	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/goal"
)

type breaksFeature struct {
	// required lists break job IDs whose ReasonBreak Unassigned entries are
	// kept when promoteUnassignedToIgnored is set; the feature raises no
	// violation of its own for an unscheduled required break.
	required map[string]bool
	// promoteUnassignedToIgnored deletes an unassignable optional break's
	// ReasonBreak entry from Unassigned (§4.4 "optionally promotes unassigned
	// breaks to ignored"); the break is not added to Ignored, since Unassigned
	// is keyed by job ID only.
	promoteUnassignedToIgnored bool
}

// NewBreaks returns the Breaks feature. requiredBreakIDs names the required
// breaks, whose Unassigned entries are never removed; every other break job
// is optional.
func NewBreaks(requiredBreakIDs []string, promoteUnassignedToIgnored bool) goal.Feature {
	f := &breaksFeature{required: make(map[string]bool, len(requiredBreakIDs)), promoteUnassignedToIgnored: promoteUnassignedToIgnored}
	for _, id := range requiredBreakIDs {
		f.required[id] = true
	}

	return goal.Feature{Name: "breaks", Constraint: f, State: f}
}

func (f *breaksFeature) isBreak(job core.Job) bool {
	for _, single := range job.AllSingles() {
		if single.Dimens.GetActivityType() == core.ActivityBreak {
			return true
		}
	}

	return false
}

func (f *breaksFeature) Evaluate(mc core.MoveContext) *core.ConstraintViolation {
	var job core.Job
	var actor *core.Actor
	switch {
	case mc.Route != nil:
		job, actor = mc.Route.Job, mc.Route.Route.Route.Actor
	case mc.Activity != nil && mc.Activity.Target != nil:
		job, actor = mc.Activity.Target.Job, mc.Activity.Route.Route.Actor
	default:
		return nil
	}
	if job == nil || !f.isBreak(job) {
		return nil
	}
	for _, single := range job.AllSingles() {
		vehicleID, shiftIndex, bound := single.Dimens.GetVehicleBinding()
		if !bound {
			continue
		}
		if vehicleID != actor.Vehicle.VehicleID() || shiftIndex != actor.ShiftIndex {
			return &core.ConstraintViolation{Code: core.ReasonBreak, Stopped: true}
		}
	}

	return nil
}

func (f *breaksFeature) AcceptInsertion(*core.SolutionContext, int, core.Job) {}

func (f *breaksFeature) AcceptRouteState(rc *core.RouteContext) {
	// remove orphan breaks: a break bound to this actor that somehow ended up
	// on a mismatched route is dropped rather than left dangling.
	activities := rc.Route.Tour.Activities
	kept := activities[:0]
	for _, a := range activities {
		if a.Job == nil || a.Job.Dimens.GetActivityType() != core.ActivityBreak {
			kept = append(kept, a)

			continue
		}
		vehicleID, shiftIndex, bound := a.Job.Dimens.GetVehicleBinding()
		if bound && (vehicleID != rc.Route.Actor.Vehicle.VehicleID() || shiftIndex != rc.Route.Actor.ShiftIndex) {
			continue // orphaned, drop
		}
		kept = append(kept, a)
	}
	rc.Route.Tour.Activities = kept
}

func (f *breaksFeature) AcceptSolutionState(sc *core.SolutionContext) {
	if !f.promoteUnassignedToIgnored {
		return
	}
	for id, reason := range sc.Unassigned {
		if reason.Code != core.ReasonBreak {
			continue
		}
		if f.required[id] {
			continue
		}
		delete(sc.Unassigned, id)
	}
}
