// File: skills.go
// Role: Skills feature (§4.4) — rejects a job→route match unless the
// vehicle's skill set satisfies the job's {all_of, one_of, none_of}.
package feature

import (
	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/goal"
)

type skillsConstraint struct{}

func (skillsConstraint) Evaluate(mc core.MoveContext) *core.ConstraintViolation {
	var job core.Job
	var actor *core.Actor
	switch {
	case mc.Route != nil:
		job, actor = mc.Route.Job, mc.Route.Route.Route.Actor
	case mc.Activity != nil && mc.Activity.Target != nil && mc.Activity.Target.Job != nil:
		job, actor = mc.Activity.Target.Job, mc.Activity.Route.Route.Actor
	default:
		return nil
	}
	for _, single := range job.AllSingles() {
		req, ok := single.Dimens.GetSkills()
		if !ok {
			continue
		}
		if !actor.Vehicle.Skills.Satisfies(req) {
			return &core.ConstraintViolation{Code: core.ReasonSkill, Stopped: true}
		}
	}

	return nil
}

// NewSkills returns the Skills feature.
func NewSkills() goal.Feature {
	return goal.Feature{Name: "skills", Constraint: skillsConstraint{}}
}
