package construction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/construction"
	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/feature"
	"github.com/katalvlaran/vrpcore/goal"
	"github.com/katalvlaran/vrpcore/transport"
)

func flatMatrix(t *testing.T, n int) *transport.Matrix {
	t.Helper()
	dur := make([]float64, n*n)
	for i := range dur {
		dur[i] = 1
	}
	m, err := transport.NewMatrix([][]float64{dur}, [][]float64{dur}, nil)
	require.NoError(t, err)

	return m
}

func newProblem(t *testing.T, jobCount int) *core.Problem {
	t.Helper()
	keys := core.NewStateKeyRegistry()
	tm := flatMatrix(t, 20)

	ctx := goal.NewContext([]goal.Feature{
		feature.NewCapacity(keys),
		feature.NewMinimizeDistance(tm, core.DefaultActivityCost{}),
	}, [][]string{{"minimize_distance"}}, []string{"minimize_distance"})

	v := &core.Vehicle{
		Dimens:   core.NewDimens().Set(core.DimenVehicleID, "v1"),
		Capacity: core.SingleLoad(1000),
		Details:  []core.ShiftDetail{{Start: 0, HasEnd: true, End: 0}},
	}

	jobs := make([]core.Job, jobCount)
	for i := 0; i < jobCount; i++ {
		jobs[i] = &core.Single{
			Places: []core.Place{{Location: core.Location(i + 1)}},
			Dimens: core.NewDimens().Set(core.DimenID, string(rune('a'+i))),
		}
	}

	return &core.Problem{
		Fleet:         []*core.Vehicle{v},
		Jobs:          jobs,
		Goal:          ctx,
		ActivityCost:  core.DefaultActivityCost{},
		TransportCost: tm,
	}
}

func TestCheapest_PlacesEveryJob(t *testing.T) {
	p := newProblem(t, 5)
	ic := core.NewInsertionContext(p, core.NewEnvironment(1))

	construction.NewCheapest().Recreate(ic)

	assert.Empty(t, ic.Solution.Required)
	assert.Empty(t, ic.Solution.Unassigned)
}

func TestRegret_PlacesEveryJob(t *testing.T) {
	p := newProblem(t, 5)
	ic := core.NewInsertionContext(p, core.NewEnvironment(1))

	construction.NewRegret(2).Recreate(ic)

	assert.Empty(t, ic.Solution.Required)
}

func TestSlice_PartitionsAndPlacesAll(t *testing.T) {
	p := newProblem(t, 6)
	ic := core.NewInsertionContext(p, core.NewEnvironment(1))

	recreator := construction.NewSlice(construction.NewCheapest(), construction.ClusterByCount(2))
	recreator.Recreate(ic)

	assert.Empty(t, ic.Solution.Required)
}

func TestBlinks_StillPlacesAllJobs(t *testing.T) {
	p := newProblem(t, 5)
	ic := core.NewInsertionContext(p, core.NewEnvironment(7))

	construction.NewBlinks(0.5).Recreate(ic)

	assert.Empty(t, ic.Solution.Required)
}

func TestRegistry_PickIsDeterministicForFixedSeed(t *testing.T) {
	reg := construction.NewRegistry(
		construction.WeightedRecreator{Recreator: construction.NewCheapest(), Weight: 1},
		construction.WeightedRecreator{Recreator: construction.NewRegret(2), Weight: 1},
	)
	env := core.NewEnvironment(42)
	picked := reg.Pick(env)
	assert.NotNil(t, picked)

	envA, envB := core.NewEnvironment(7), core.NewEnvironment(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, reg.Pick(envA), reg.Pick(envB))
	}
}
