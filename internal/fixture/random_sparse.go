// File: random_sparse.go
// Role: Random-sparse synthetic Problem builder (§1.4, adapted from the
// teacher's random-sparse graph generator idiom): jobs scattered uniformly at
// random over a bounding box, with a fraction of location pairs marked
// unreachable to exercise infeasibility handling, all seeded through an
// explicit math/rand source (never global).
package fixture

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/feature"
	"github.com/katalvlaran/vrpcore/goal"
	"github.com/katalvlaran/vrpcore/transport"
)

// RandomSparseOptions configures RandomSparse.
type RandomSparseOptions struct {
	JobCount       int
	VehicleCount   int
	Capacity       int64
	BoundingBox    float64 // coordinates drawn uniformly from [0, BoundingBox)
	UnreachableProbability float64 // fraction of off-diagonal cells marked unreachable
	Seed           int64
}

// RandomSparse builds a Problem with JobCount jobs (plus a depot at location
// 0) scattered uniformly over a BoundingBox x BoundingBox square.
func RandomSparse(opts RandomSparseOptions) *core.Problem {
	if opts.JobCount < 1 {
		opts.JobCount = 1
	}
	if opts.VehicleCount < 1 {
		opts.VehicleCount = 1
	}
	if opts.Capacity <= 0 {
		opts.Capacity = 1000
	}
	if opts.BoundingBox <= 0 {
		opts.BoundingBox = 100
	}
	if opts.UnreachableProbability < 0 || opts.UnreachableProbability >= 1 {
		opts.UnreachableProbability = 0
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	n := opts.JobCount + 1
	coords := make([][2]float64, n)
	for i := range coords {
		coords[i] = [2]float64{rng.Float64() * opts.BoundingBox, rng.Float64() * opts.BoundingBox}
	}

	flat := make([]float64, n*n)
	errorCodes := make([]int, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dx := coords[i][0] - coords[j][0]
			dy := coords[i][1] - coords[j][1]
			flat[i*n+j] = math.Sqrt(dx*dx + dy*dy)
			// Keep the depot (index 0) fully reachable so at least one
			// feasible tour always exists; sparsify only job-to-job pairs.
			if i != 0 && j != 0 && rng.Float64() < opts.UnreachableProbability {
				errorCodes[i*n+j] = 1
			}
		}
	}
	m, err := transport.NewMatrix([][]float64{flat}, [][]float64{flat}, [][]int{errorCodes})
	if err != nil {
		panic("fixture: random-sparse matrix construction: " + err.Error())
	}

	jobs := make([]core.Job, opts.JobCount)
	for i := 0; i < opts.JobCount; i++ {
		jobs[i] = &core.Single{
			Places: []core.Place{{Location: core.Location(i + 1)}},
			Dimens: core.NewDimens().Set(core.DimenID, NewID()),
		}
	}

	fleet := make([]*core.Vehicle, opts.VehicleCount)
	for i := range fleet {
		fleet[i] = &core.Vehicle{
			Dimens:   core.NewDimens().Set(core.DimenVehicleID, NewID()),
			Capacity: core.SingleLoad(opts.Capacity),
			Details:  []core.ShiftDetail{{Start: 0, HasEnd: true, End: 0}},
		}
	}

	keys := core.NewStateKeyRegistry()
	goalCtx := goal.NewContext([]goal.Feature{
		feature.NewCapacity(keys),
		feature.NewMinimizeDistance(m, core.DefaultActivityCost{}),
	}, [][]string{{"minimize_distance"}}, []string{"minimize_distance"})

	return &core.Problem{
		Fleet:         fleet,
		Jobs:          jobs,
		Goal:          goalCtx,
		ActivityCost:  core.DefaultActivityCost{},
		TransportCost: m,
	}
}
