// File: grid.go
// Role: Grid-of-jobs synthetic Problem builder (§1.4, adapted from the
// teacher's grid-graph generator idiom): jobs sit on evenly spaced cells of a
// rows x cols grid, the depot at cell (0,0); distances are Euclidean.
package fixture

import (
	"math"

	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/feature"
	"github.com/katalvlaran/vrpcore/goal"
	"github.com/katalvlaran/vrpcore/transport"
)

// GridOptions configures Grid.
type GridOptions struct {
	Rows, Cols   int
	CellSize     float64
	VehicleCount int
	Capacity     int64
}

// Grid builds a Problem with one job per grid cell (excluding the depot at
// cell 0,0), VehicleCount closed-shift vehicles starting and ending at the
// depot, and a capacity + minimize-distance goal.
func Grid(opts GridOptions) *core.Problem {
	if opts.Rows < 1 {
		opts.Rows = 1
	}
	if opts.Cols < 1 {
		opts.Cols = 1
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 1
	}
	if opts.VehicleCount < 1 {
		opts.VehicleCount = 1
	}
	if opts.Capacity <= 0 {
		opts.Capacity = 1000
	}

	n := opts.Rows * opts.Cols
	coords := make([][2]float64, n)
	for r := 0; r < opts.Rows; r++ {
		for c := 0; c < opts.Cols; c++ {
			coords[r*opts.Cols+c] = [2]float64{float64(c) * opts.CellSize, float64(r) * opts.CellSize}
		}
	}

	flat := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dx := coords[i][0] - coords[j][0]
			dy := coords[i][1] - coords[j][1]
			flat[i*n+j] = math.Sqrt(dx*dx + dy*dy)
		}
	}
	m, err := transport.NewMatrix([][]float64{flat}, [][]float64{flat}, nil)
	if err != nil {
		panic("fixture: grid matrix construction: " + err.Error())
	}

	jobs := make([]core.Job, 0, n-1)
	for i := 1; i < n; i++ {
		jobs = append(jobs, &core.Single{
			Places: []core.Place{{Location: core.Location(i)}},
			Dimens: core.NewDimens().Set(core.DimenID, NewID()),
		})
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
