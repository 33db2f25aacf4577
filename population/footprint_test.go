package population_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/population"
)

func oneRouteSolution(t *testing.T, locs ...core.Location) *core.InsertionContext {
	t.Helper()
	acts := make([]core.Activity, len(locs))
	for i, l := range locs {
		acts[i] = core.Activity{Place: core.Place{Location: l}}
	}
	tour := &core.Tour{Activities: acts}
	route := core.NewRoute(&core.Actor{Vehicle: &core.Vehicle{}})
	route.Tour = tour
	rc := core.NewRouteContext(route)

	return &core.InsertionContext{
		Problem:  &core.Problem{},
		Solution: &core.SolutionContext{Routes: []*core.RouteContext{rc}},
	}
}

func TestFootprint_ObserveAccumulatesEdgeCounts(t *testing.T) {
	ic := oneRouteSolution(t, 0, 1, 2)

	fp := population.NewFootprint()
	fp.Observe(ic)
	fp.Observe(ic)

	assert.Equal(t, uint64(2), fp.Count(0, 1))
	assert.Equal(t, uint64(2), fp.Count(1, 2))
	assert.Equal(t, uint64(0), fp.Count(2, 0))
}

func TestFootprint_FoldMergesConcurrentObservations(t *testing.T) {
	a := oneRouteSolution(t, 0, 1)
	b := oneRouteSolution(t, 0, 1)
	c := oneRouteSolution(t, 1, 0)

	fp := population.NewFootprint()
	fp.Fold([]*core.InsertionContext{a, b, c})

	require.Equal(t, uint64(2), fp.Count(0, 1))
	require.Equal(t, uint64(1), fp.Count(1, 0))
}
