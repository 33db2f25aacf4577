package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/construction"
	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/internal/fixture"
)

func TestGrid_BuildsOneJobPerNonDepotCell(t *testing.T) {
	problem := fixture.Grid(fixture.GridOptions{Rows: 3, Cols: 3, CellSize: 2, VehicleCount: 2, Capacity: 10})

	assert.Len(t, problem.Jobs, 8)
	assert.Len(t, problem.Fleet, 2)

	ic := core.NewInsertionContext(problem, core.NewEnvironment(1))
	construction.NewCheapest().Recreate(ic)
	assert.Empty(t, ic.Solution.Required)
}

func TestRandomSparse_IsDeterministicForFixedSeed(t *testing.T) {
	a := fixture.RandomSparse(fixture.RandomSparseOptions{JobCount: 10, VehicleCount: 3, Seed: 42})
	b := fixture.RandomSparse(fixture.RandomSparseOptions{JobCount: 10, VehicleCount: 3, Seed: 42})

	require.Len(t, a.Jobs, 10)
	require.Len(t, b.Jobs, 10)

	for i := range a.Jobs {
		aLoc, _ := primaryLocation(a.Jobs[i])
		bLoc, _ := primaryLocation(b.Jobs[i])
		assert.Equal(t, aLoc, bLoc)

		for j := range a.Jobs {
			aTo, _ := primaryLocation(a.Jobs[j])
			bTo, _ := primaryLocation(b.Jobs[j])
			assert.Equal(t,
				a.TransportCost.DistanceApprox(core.Profile{}, aLoc, aTo),
				b.TransportCost.DistanceApprox(core.Profile{}, bLoc, bTo),
			)
		}
	}
}

func primaryLocation(job core.Job) (core.Location, bool) {
	singles := job.AllSingles()
	if len(singles) == 0 || len(singles[0].Places) == 0 {
		return 0, false
	}

	return singles[0].Places[0].Location, true
}
