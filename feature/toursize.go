// File: toursize.go
// Role: Tour-size feature (§4.4) — caps the number of job activities a route
// may carry.
package feature

import (
	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/goal"
)

type tourSizeConstraint struct{ max int }

func (c tourSizeConstraint) Evaluate(mc core.MoveContext) *core.ConstraintViolation {
	var rc *core.RouteContext
	switch {
	case mc.Route != nil:
		rc = mc.Route.Route
	case mc.Activity != nil:
		rc = mc.Activity.Route
	default:
		return nil
	}
	if len(rc.Route.Tour.JobActivityIndices()) >= c.max {
		return &core.ConstraintViolation{Code: core.ReasonTourSize, Stopped: true}
	}

	return nil
}

// NewTourSize returns the Tour size feature, capping a route at max job
// activities.
func NewTourSize(max int) goal.Feature {
	return goal.Feature{Name: "tour_size", Constraint: tourSizeConstraint{max: max}}
}
