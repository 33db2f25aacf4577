// File: groups.go
// Role: Groups feature (§4.4) — at most one job per named group per route; a
// route "owns" a group once it serves a member.
package feature

import (
	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/goal"
)

type groupsFeature struct {
	stateKey core.StateKey // per-route set of owned group names
}

// NewGroups returns the Groups feature.
func NewGroups(keys *core.StateKeyRegistry) goal.Feature {
	f := &groupsFeature{stateKey: keys.Register("feature.groups.owned")}

	return goal.Feature{Name: "groups", Constraint: f, State: f}
}

func (f *groupsFeature) owned(rc *core.RouteContext) map[string]struct{} {
	owned, _ := core.GetScalar[map[string]struct{}](rc.State, f.stateKey)
	if owned == nil {
		owned = make(map[string]struct{})
	}

	return owned
}

func (f *groupsFeature) Evaluate(mc core.MoveContext) *core.ConstraintViolation {
	var job core.Job
	var rc *core.RouteContext
	switch {
	case mc.Route != nil:
		job, rc = mc.Route.Job, mc.Route.Route
	case mc.Activity != nil && mc.Activity.Target != nil:
		job, rc = mc.Activity.Target.Job, mc.Activity.Route
	default:
		return nil
	}
	if job == nil {
		return nil
	}
	owned := f.owned(rc)
	for _, single := range job.AllSingles() {
		group, ok := single.Dimens.GetGroup()
		if !ok {
			continue
		}
		if _, taken := owned[group]; taken {
			return &core.ConstraintViolation{Code: core.ReasonGroup}
		}
	}

	return nil
}

func (f *groupsFeature) AcceptInsertion(sc *core.SolutionContext, routeIndex int, job core.Job) {
	if job == nil || routeIndex < 0 || routeIndex >= len(sc.Routes) {
		return
	}
	rc := sc.Routes[routeIndex]
	// copy before adding: the stored map may be shared with a cloned StateStore
	owned := make(map[string]struct{})
	for group := range f.owned(rc) {
		owned[group] = struct{}{}
	}
	for _, single := range job.AllSingles() {
		if group, ok := single.Dimens.GetGroup(); ok {
			owned[group] = struct{}{}
		}
	}
	core.SetScalar(rc.State, f.stateKey, owned)
}

func (f *groupsFeature) AcceptRouteState(rc *core.RouteContext) {
	owned := make(map[string]struct{})
	for _, a := range rc.Route.Tour.Activities {
		if a.Job == nil {
			continue
		}
		if group, ok := a.Job.Dimens.GetGroup(); ok {
			owned[group] = struct{}{}
		}
	}
	core.SetScalar(rc.State, f.stateKey, owned)
}

func (f *groupsFeature) AcceptSolutionState(*core.SolutionContext) {}
