// File: compatibility.go
// Role: Compatibility feature (§4.4) — two jobs with different non-null
// compatibility tags cannot share a route.
package feature

import (
	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/goal"
)

type compatibilityFeature struct {
	stateKey core.StateKey // the route's established tag, if any
}

// NewCompatibility returns the Compatibility feature.
func NewCompatibility(keys *core.StateKeyRegistry) goal.Feature {
	f := &compatibilityFeature{stateKey: keys.Register("feature.compatibility.tag")}

	return goal.Feature{Name: "compatibility", Constraint: f, State: f}
}

func (f *compatibilityFeature) Evaluate(mc core.MoveContext) *core.ConstraintViolation {
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
	established, ok := core.GetScalar[string](rc.State, f.stateKey)
	if !ok || established == "" {
		return nil
	}
	for _, single := range job.AllSingles() {
		tag, has := single.Dimens.GetCompatibility()
		if has && tag != established {
			return &core.ConstraintViolation{Code: core.ReasonCompatibility, Stopped: true}
		}
	}

	return nil
}

func (f *compatibilityFeature) AcceptInsertion(*core.SolutionContext, int, core.Job) {}

func (f *compatibilityFeature) AcceptRouteState(rc *core.RouteContext) {
	for _, a := range rc.Route.Tour.Activities {
		if a.Job == nil {
			continue
		}
		if tag, ok := a.Job.Dimens.GetCompatibility(); ok && tag != "" {
			core.SetScalar(rc.State, f.stateKey, tag)

			return
		}
	}
	core.SetScalar(rc.State, f.stateKey, "")
}

func (f *compatibilityFeature) AcceptSolutionState(*core.SolutionContext) {}
