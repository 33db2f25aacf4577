package ruin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/construction"
	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/feature"
	"github.com/katalvlaran/vrpcore/goal"
	"github.com/katalvlaran/vrpcore/ruin"
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

func solvedContext(t *testing.T, jobCount int) *core.InsertionContext {
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

	p := &core.Problem{
		Fleet:         []*core.Vehicle{v},
		Jobs:          jobs,
		Goal:          ctx,
		ActivityCost:  core.DefaultActivityCost{},
		TransportCost: tm,
	}
	ic := core.NewInsertionContext(p, core.NewEnvironment(1))
	construction.NewCheapest().Recreate(ic)
	require.Empty(t, ic.Solution.Required)

	return ic
}

func assignedCount(ic *core.InsertionContext) int {
	n := 0
	for _, rc := range ic.Solution.Routes {
		n += len(rc.Route.Tour.JobActivityIndices())
	}

	return n
}

func TestRandomJob_ReturnsExactlyLimitJobs(t *testing.T) {
	ic := solvedContext(t, 6)

	ruin.NewRandomJob(ruin.Limit{Absolute: 2}).Ruin(ic)

	assert.Len(t, ic.Solution.Required, 2)
	assert.Equal(t, 4, assignedCount(ic))
}

func TestRandomJob_NeverRemovesLockedJobs(t *testing.T) {
	ic := solvedContext(t, 4)
	ic.Solution.Locked.Insert("a")
	ic.Solution.Locked.Insert("b")
	ic.Solution.Locked.Insert("c")

	ruin.NewRandomJob(ruin.Limit{Absolute: 3}).Ruin(ic)

	require.Len(t, ic.Solution.Required, 1)
	assert.Equal(t, "d", ic.Solution.Required[0].JobID())
}

func TestCloseRoute_EmptiesTheChosenRoute(t *testing.T) {
	ic := solvedContext(t, 4)
	before := assignedCount(ic)

	ruin.NewCloseRoute().Ruin(ic)

	assert.Equal(t, before-len(ic.Solution.Required), assignedCount(ic))
	assert.NotEmpty(t, ic.Solution.Required)
}

func TestWorst_RemovesLimitJobsAndRespectsLock(t *testing.T) {
	ic := solvedContext(t, 5)
	ic.Solution.Locked.Insert("a")

	ruin.NewWorst(ruin.Limit{Absolute: 2}).Ruin(ic)

	assert.Len(t, ic.Solution.Required, 2)
	for _, j := range ic.Solution.Required {
		assert.NotEqual(t, "a", j.JobID())
	}
}

func TestNeighbour_RemovesSeedPlusNeighbours(t *testing.T) {
	ic := solvedContext(t, 5)

	ruin.NewNeighbour(ruin.Limit{Absolute: 3}).Ruin(ic)

	assert.Len(t, ic.Solution.Required, 3)
}

func TestCluster_RemovesUpToLimit(t *testing.T) {
	ic := solvedContext(t, 6)

	ruin.NewCluster(ruin.Limit{Absolute: 3}, 1000).Ruin(ic)

	assert.LessOrEqual(t, len(ic.Solution.Required), 3)
	assert.NotEmpty(t, ic.Solution.Required)
}

func TestAdjacentString_RemovesContiguousRun(t *testing.T) {
	ic := solvedContext(t, 6)

	ruin.NewAdjacentString(ruin.Limit{Absolute: 3}, 2).Ruin(ic)

	assert.NotEmpty(t, ic.Solution.Required)
	assert.LessOrEqual(t, len(ic.Solution.Required), 3)
}

func TestRegistry_PickReturnsAnOperator(t *testing.T) {
	reg := ruin.NewRegistry(
		ruin.WeightedOperator{Operator: ruin.NewRandomJob(ruin.Limit{Absolute: 1}), Weight: 1},
		ruin.WeightedOperator{Operator: ruin.NewCloseRoute(), Weight: 1},
	)
	env := core.NewEnvironment(9)

	assert.NotNil(t, reg.Pick(env))
}
