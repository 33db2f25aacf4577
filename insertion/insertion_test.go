package insertion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/feature"
	"github.com/katalvlaran/vrpcore/goal"
	"github.com/katalvlaran/vrpcore/insertion"
	"github.com/katalvlaran/vrpcore/transport"
)

func flatMatrix(t *testing.T, n int) *transport.Matrix {
	t.Helper()
	dur := make([]float64, n*n)
	for i := 0; i < n*n; i++ {
		dur[i] = 1
	}
	m, err := transport.NewMatrix([][]float64{dur}, [][]float64{dur}, nil)
	require.NoError(t, err)

	return m
}

func newProblem(t *testing.T) (*core.Problem, *core.Vehicle) {
	t.Helper()
	keys := core.NewStateKeyRegistry()
	tm := flatMatrix(t, 10)

	ctx := goal.NewContext(
		[]goal.Feature{
			feature.NewCapacity(keys),
			feature.NewMinimizeDistance(tm, core.DefaultActivityCost{}),
		},
		[][]string{{"minimize_distance"}},
		[]string{"minimize_distance"},
	)

	v := &core.Vehicle{
		Dimens:   core.NewDimens().Set(core.DimenVehicleID, "v1"),
		Capacity: core.SingleLoad(100),
		Details:  []core.ShiftDetail{{Start: 0, HasEnd: true, End: 0}},
	}

	p := &core.Problem{
		Fleet:         []*core.Vehicle{v},
		Goal:          ctx,
		ActivityCost:  core.DefaultActivityCost{},
		TransportCost: tm,
	}

	return p, v
}

func TestEvaluateSingleRoute_FindsCheapestPosition(t *testing.T) {
	p, v := newProblem(t)
	env := core.NewEnvironment(1)
	ic := core.NewInsertionContext(p, env)

	actor := v.MaterializeActors()[0]
	rc := core.NewRouteContext(core.NewRoute(actor))
	ic.Problem.Goal.AcceptRouteState(rc)

	job := &core.Single{
		Places: []core.Place{{Location: 3, Duration: 0}},
		Dimens: core.NewDimens().Set(core.DimenID, "j1"),
	}

	result := insertion.EvaluateSingleRoute(ic, rc, job, job)
	require.True(t, result.Ok())
	assert.Equal(t, 1, result.Success.Activities[0].Index)
}

func TestApply_MovesJobOutOfRequired(t *testing.T) {
	p, v := newProblem(t)
	job := &core.Single{
		Places: []core.Place{{Location: 3}},
		Dimens: core.NewDimens().Set(core.DimenID, "j1"),
	}
	p.Jobs = []core.Job{job}

	env := core.NewEnvironment(1)
	ic := core.NewInsertionContext(p, env)

	result := insertion.EvaluateAnyRoute(ic, job)
	require.True(t, result.Ok())

	insertion.Apply(ic, result.Success)

	assert.Empty(t, ic.Solution.Required)
	assert.Len(t, ic.Solution.Routes, 1)
	assert.False(t, ic.Solution.Routes[0].Route.IsEmpty())
}

func TestEvaluateAnyRoute_RejectsOverCapacity(t *testing.T) {
	p, v := newProblem(t)
	_ = v
	job := &core.Single{
		Places: []core.Place{{Location: 3}},
		Dimens: core.NewDimens().
			Set(core.DimenID, "big").
			Set(core.DimenDemand, core.Demand{Pickup: core.LoadPart{Static: core.SingleLoad(1000)}}),
	}
	p.Jobs = []core.Job{job}

	env := core.NewEnvironment(1)
	ic := core.NewInsertionContext(p, env)

	result := insertion.EvaluateAnyRoute(ic, job)
	require.False(t, result.Ok())
	assert.Equal(t, core.ReasonCapacity, result.Failure.Code)
}
