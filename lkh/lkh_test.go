package lkh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/construction"
	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/feature"
	"github.com/katalvlaran/vrpcore/goal"
	"github.com/katalvlaran/vrpcore/lkh"
	"github.com/katalvlaran/vrpcore/transport"
)

func costMatrix(t *testing.T, n int, dist func(i, j int) float64) *transport.Matrix {
	t.Helper()
	flat := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			flat[i*n+j] = dist(i, j)
		}
	}
	m, err := transport.NewMatrix([][]float64{flat}, [][]float64{flat}, nil)
	require.NoError(t, err)

	return m
}

// solvedZigzag places 4 jobs at locations that a greedy cheapest-insertion
// pass visits out of spatial order, leaving an obvious 2-opt improvement.
func solvedZigzag(t *testing.T) *core.InsertionContext {
	t.Helper()
	n := 6
	// locations: 0 = depot, 1..4 = jobs laid out on a line at 3,1,4,2 (so
	// insertion order != spatial order), distance = |i-j| along the line.
	coord := map[int]float64{0: 0, 1: 3, 2: 1, 3: 4, 4: 2, 5: 5}
	tm := costMatrix(t, n, func(i, j int) float64 {
		a, b := coord[i], coord[j]
		if a > b {
			return a - b
		}

		return b - a
	})

	keys := core.NewStateKeyRegistry()
	ctx := goal.NewContext([]goal.Feature{
		feature.NewCapacity(keys),
		feature.NewMinimizeDistance(tm, core.DefaultActivityCost{}),
	}, [][]string{{"minimize_distance"}}, []string{"minimize_distance"})

	v := &core.Vehicle{
		Dimens:   core.NewDimens().Set(core.DimenVehicleID, "v1"),
		Capacity: core.SingleLoad(1000),
		Details:  []core.ShiftDetail{{Start: 0, HasEnd: true, End: 0}},
	}

	jobs := make([]core.Job, 4)
	for i := 0; i < 4; i++ {
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
	construction.NewNearest().Recreate(ic)
	require.Empty(t, ic.Solution.Required)

	return ic
}

func routeDistance(ic *core.InsertionContext) float64 {
	var total float64
	for _, rc := range ic.Solution.Routes {
		acts := rc.Route.Tour.Activities
		for i := 1; i < len(acts); i++ {
			total += ic.Problem.TransportCost.DistanceApprox(rc.Route.Actor.Vehicle.Profile, acts[i-1].Place.Location, acts[i].Place.Location)
		}
	}

	return total
}

func TestOptimize_NeverWorsensRouteDistance(t *testing.T) {
	ic := solvedZigzag(t)
	before := routeDistance(ic)

	opt := lkh.NewOptimizer(ic.Problem.TransportCost, 3, false)
	opt.Optimize(ic)

	after := routeDistance(ic)
	assert.LessOrEqual(t, after, before+1e-9)
}

func TestOptimize_KeepsAllJobsAssigned(t *testing.T) {
	ic := solvedZigzag(t)

	opt := lkh.NewOptimizer(ic.Problem.TransportCost, 3, true)
	opt.Optimize(ic)

	total := 0
	for _, rc := range ic.Solution.Routes {
		total += len(rc.Route.Tour.JobActivityIndices())
	}
	assert.Equal(t, 4, total+len(ic.Solution.Required))
}
