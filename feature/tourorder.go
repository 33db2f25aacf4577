// File: tourorder.go
// Role: Tour-order feature (§4.4) — an optional numeric order per job;
// insertion rejected if it would place a higher-order job before a
// lower-order one already on the route.
package feature

import (
	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/goal"
)

type tourOrderConstraint struct{}

func (tourOrderConstraint) Evaluate(mc core.MoveContext) *core.ConstraintViolation {
	if mc.Activity == nil || mc.Activity.Target == nil || mc.Activity.Target.Job == nil {
		return nil
	}
	act := mc.Activity
	order, ok := act.Target.Job.Dimens.GetOrder()
	if !ok {
		return nil
	}
	if act.Prev != nil && act.Prev.Job != nil {
		if prevOrder, has := act.Prev.Job.Dimens.GetOrder(); has && prevOrder > order {
			return &core.ConstraintViolation{Code: core.ReasonTourOrder}
		}
	}
	if act.Next != nil && act.Next.Job != nil {
		if nextOrder, has := act.Next.Job.Dimens.GetOrder(); has && nextOrder < order {
			return &core.ConstraintViolation{Code: core.ReasonTourOrder}
		}
	}

	return nil
}

// NewTourOrder returns the Tour order feature.
func NewTourOrder() goal.Feature {
	return goal.Feature{Name: "tour_order", Constraint: tourOrderConstraint{}}
}
