package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/construction"
	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/feature"
	"github.com/katalvlaran/vrpcore/goal"
	"github.com/katalvlaran/vrpcore/lkh"
	"github.com/katalvlaran/vrpcore/population"
	"github.com/katalvlaran/vrpcore/ruin"
	"github.com/katalvlaran/vrpcore/solver"
	"github.com/katalvlaran/vrpcore/transport"
)

func flatMatrix(n int) []float64 {
	flat := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				flat[i*n+j] = 1
			}
		}
	}

	return flat
}

func mustMatrix(t *testing.T, n int) *transport.Matrix {
	t.Helper()
	flat := flatMatrix(n)
	m, err := transport.NewMatrix([][]float64{flat}, [][]float64{flat}, nil)
	require.NoError(t, err)

	return m
}

func testProblem(t *testing.T, jobCount int) *core.Problem {
	t.Helper()
	n := jobCount + 1
	m := mustMatrix(t, n)

	keys := core.NewStateKeyRegistry()
	ctx := goal.NewContext([]goal.Feature{
		feature.NewCapacity(keys),
		feature.NewMinimizeDistance(m, core.DefaultActivityCost{}),
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
		TransportCost: m,
	}
}

func TestLoop_RunProducesMonotoneImprovement(t *testing.T) {
	problem := testProblem(t, 6)
	env := core.NewEnvironment(7)

	ruinRegistry := ruin.NewRegistry(
		ruin.WeightedOperator{Operator: ruin.NewRandomJob(ruin.Limit{Absolute: 2}), Weight: 1},
	)
	recreateRegistry := construction.NewRegistry(
		construction.WeightedRecreator{Recreator: construction.NewCheapest(), Weight: 1},
	)
	optimizer := lkh.NewOptimizer(problem.TransportCost, 3, true)

	mutations := []solver.Mutation{
		solver.RuinRecreate{Ruin: ruinRegistry, Recreate: recreateRegistry},
		solver.LKHReorder{Optimizer: optimizer},
	}
	bandit := solver.NewBandit([]string{"ruin_recreate", "lkh_reorder"}, 0.5, 0.1, 20)
	selector := solver.NewAdaptiveSelector(bandit, mutations...)

	elitism := population.NewElitism(problem.Goal, 5)
	config := solver.NewConfig(
		solver.WithPopulation(elitism),
		solver.WithTermination(solver.MaxGenerations{Limit: 15}),
	)

	loop := solver.NewLoop(problem, selector, nil, config)
	best := loop.Run(nil, env)

	require.NotNil(t, best)
	assert.Empty(t, best.Solution.Required)
}

func TestLoop_StopsOnCancellation(t *testing.T) {
	problem := testProblem(t, 4)
	env := core.NewEnvironment(3)

	recreateRegistry := construction.NewRegistry(
		construction.WeightedRecreator{Recreator: construction.NewCheapest(), Weight: 1},
	)
	ruinRegistry := ruin.NewRegistry(
		ruin.WeightedOperator{Operator: ruin.NewRandomJob(ruin.Limit{Absolute: 1}), Weight: 1},
	)
	mutation := solver.RuinRecreate{Ruin: ruinRegistry, Recreate: recreateRegistry}
	selector := solver.NewStaticSelective(0,
		map[string]float64{"ruin_recreate": 1},
		map[string]float64{"ruin_recreate": 1},
		mutation,
	)

	token := solver.NewCancelToken()
	token.Cancel()

	elitism := population.NewElitism(problem.Goal, 3)
	config := solver.NewConfig(
		solver.WithPopulation(elitism),
		solver.WithCancelToken(token),
	)

	loop := solver.NewLoop(problem, selector, nil, config)
	best := loop.Run(nil, env)

	require.NotNil(t, best)
}
