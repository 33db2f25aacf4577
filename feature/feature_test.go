package feature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/feature"
)

func newVehicle(id string, capacity core.Load) *core.Vehicle {
	return &core.Vehicle{
		Dimens:   core.NewDimens().Set(core.DimenVehicleID, id),
		Capacity: capacity,
		Details:  []core.ShiftDetail{{HasEnd: true}},
	}
}

func newActor(v *core.Vehicle) *core.Actor {
	return v.MaterializeActors()[0]
}

func jobWithDemand(id string, pickup int64) *core.Single {
	return &core.Single{
		Places: []core.Place{{Location: 1}},
		Dimens: core.NewDimens().
			Set(core.DimenID, id).
			Set(core.DimenDemand, core.Demand{Pickup: core.LoadPart{Static: core.SingleLoad(pickup)}}),
	}
}

func TestCapacity_RejectsOverfill(t *testing.T) {
	keys := core.NewStateKeyRegistry()
	f := feature.NewCapacity(keys)

	v := newVehicle("v1", core.SingleLoad(5))
	rc := core.NewRouteContext(core.NewRoute(newActor(v)))
	f.State.AcceptRouteState(rc)

	job := jobWithDemand("j1", 10)
	mc := core.MoveContext{Activity: &core.ActivityMoveContext{
		Route: rc, Index: 1, Prev: &rc.Route.Tour.Activities[0],
		Target: &core.Activity{Job: job, Place: job.Places[0]},
	}}

	v2 := f.Constraint.Evaluate(mc)
	require.NotNil(t, v2)
	assert.Equal(t, core.ReasonCapacity, v2.Code)
}

func TestCapacity_AcceptsWithinLimit(t *testing.T) {
	keys := core.NewStateKeyRegistry()
	f := feature.NewCapacity(keys)

	v := newVehicle("v1", core.SingleLoad(50))
	rc := core.NewRouteContext(core.NewRoute(newActor(v)))
	f.State.AcceptRouteState(rc)

	job := jobWithDemand("j1", 10)
	mc := core.MoveContext{Activity: &core.ActivityMoveContext{
		Route: rc, Index: 1, Prev: &rc.Route.Tour.Activities[0],
		Target: &core.Activity{Job: job, Place: job.Places[0]},
	}}

	assert.Nil(t, f.Constraint.Evaluate(mc))
}

func TestSkills_RejectsUnsatisfiedRequirement(t *testing.T) {
	f := feature.NewSkills()

	v := newVehicle("v1", core.SingleLoad(100))
	v.Skills = core.NewVehicleSkills("refrigerated")
	rc := core.NewRouteContext(core.NewRoute(newActor(v)))

	job := &core.Single{
		Dimens: core.NewDimens().Set(core.DimenID, "j1").Set(core.DimenSkills, core.Skills{AllOf: []string{"hazmat"}}),
	}
	mc := core.MoveContext{Activity: &core.ActivityMoveContext{
		Route: rc, Target: &core.Activity{Job: job},
	}}

	violation := f.Constraint.Evaluate(mc)
	require.NotNil(t, violation)
	assert.Equal(t, core.ReasonSkill, violation.Code)
}

func TestGroups_RejectsSecondMemberOnSameRoute(t *testing.T) {
	keys := core.NewStateKeyRegistry()
	f := feature.NewGroups(keys)

	v := newVehicle("v1", core.SingleLoad(100))
	rc := core.NewRouteContext(core.NewRoute(newActor(v)))

	first := &core.Single{Dimens: core.NewDimens().Set(core.DimenID, "a").Set(core.DimenGroup, "g1")}
	rc.Route.Tour.InsertAt(1, core.Activity{Job: first})
	f.State.AcceptRouteState(rc)

	second := &core.Single{Dimens: core.NewDimens().Set(core.DimenID, "b").Set(core.DimenGroup, "g1")}
	mc := core.MoveContext{Activity: &core.ActivityMoveContext{Route: rc, Target: &core.Activity{Job: second}}}

	violation := f.Constraint.Evaluate(mc)
	require.NotNil(t, violation)
	assert.Equal(t, core.ReasonGroup, violation.Code)
}

func TestTourSize_RejectsBeyondMax(t *testing.T) {
	f := feature.NewTourSize(1)

	v := newVehicle("v1", core.SingleLoad(100))
	rc := core.NewRouteContext(core.NewRoute(newActor(v)))
	rc.Route.Tour.InsertAt(1, core.Activity{Job: &core.Single{Dimens: core.NewDimens().Set(core.DimenID, "a")}})

	mc := core.MoveContext{Activity: &core.ActivityMoveContext{Route: rc}}
	violation := f.Constraint.Evaluate(mc)
	require.NotNil(t, violation)
	assert.Equal(t, core.ReasonTourSize, violation.Code)
}

func TestTourOrder_RejectsOutOfOrderInsertion(t *testing.T) {
	f := feature.NewTourOrder()

	earlier := &core.Activity{Job: &core.Single{Dimens: core.NewDimens().Set(core.DimenOrder, 1.0)}}
	target := &core.Activity{Job: &core.Single{Dimens: core.NewDimens().Set(core.DimenOrder, 0.0)}}

	mc := core.MoveContext{Activity: &core.ActivityMoveContext{Prev: earlier, Target: target}}
	violation := f.Constraint.Evaluate(mc)
	require.NotNil(t, violation)
	assert.Equal(t, core.ReasonTourOrder, violation.Code)
}
