package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/core"
)

func newTestVehicle(id string) *core.Vehicle {
	return &core.Vehicle{
		Dimens:   core.NewDimens().Set(core.DimenVehicleID, id),
		Capacity: core.SingleLoad(10),
		Details:  []core.ShiftDetail{{Start: 0, HasEnd: true, End: 0}},
	}
}

func newTestJob(id string, loc core.Location) *core.Single {
	return &core.Single{
		Places: []core.Place{{Location: loc, Duration: 1}},
		Dimens: core.NewDimens().Set(core.DimenID, id),
	}
}

type nullGoal struct{}

func (nullGoal) Evaluate(core.MoveContext) *core.ConstraintViolation { return nil }
func (nullGoal) Estimate(core.MoveContext) []float64                { return []float64{0} }
func (nullGoal) Fitness(*core.InsertionContext) []float64           { return []float64{0} }
func (nullGoal) TotalOrder(*core.InsertionContext, *core.InsertionContext) int { return 0 }
func (nullGoal) Merge(source, _ core.Job) (core.Job, bool)           { return source, false }
func (nullGoal) AcceptInsertion(*core.SolutionContext, int, core.Job) {}
func (nullGoal) AcceptRouteState(rc *core.RouteContext)              { rc.State.ClearStale() }
func (nullGoal) AcceptSolutionState(*core.SolutionContext)           {}

type nullTransport struct{}

func (nullTransport) Distance(core.Profile, core.Location, core.Location, float64) float64 {
	return 1
}
func (nullTransport) Duration(core.Profile, core.Location, core.Location, float64) float64 {
	return 1
}
func (nullTransport) DistanceApprox(core.Profile, core.Location, core.Location) float64 { return 1 }

func newTestProblem() *core.Problem {
	v := newTestVehicle("v1")
	j1 := newTestJob("j1", 1)
	j2 := newTestJob("j2", 2)

	return &core.Problem{
		Fleet:         []*core.Vehicle{v},
		Jobs:          []core.Job{j1, j2},
		Goal:          nullGoal{},
		ActivityCost:  core.DefaultActivityCost{},
		TransportCost: nullTransport{},
	}
}

func TestValidateProblem_OK(t *testing.T) {
	p := newTestProblem()
	assert.NoError(t, core.ValidateProblem(p))
}

func TestValidateProblem_ReportsAllIssues(t *testing.T) {
	p := &core.Problem{}
	err := core.ValidateProblem(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fleet is empty")
	assert.Contains(t, err.Error(), "goal is nil")
	assert.Contains(t, err.Error(), "transport cost is nil")
}

func TestSolutionContext_ConservationInvariant(t *testing.T) {
	p := newTestProblem()
	sc := core.NewSolutionContext(p)

	require.Len(t, sc.Required, 2)
	assert.NoError(t, core.CheckInvariants(p, sc))

	j1 := p.Jobs[0]
	sc.MarkUnassigned(j1, core.UnassignedReason{Code: core.ReasonCapacity})
	assert.Len(t, sc.Required, 1)
	assert.Contains(t, sc.Unassigned, "j1")
	assert.NoError(t, core.CheckInvariants(p, sc))
}

func TestInsertionContext_DeepCopyIsIndependent(t *testing.T) {
	p := newTestProblem()
	env := core.NewEnvironment(1)
	ic := core.NewInsertionContext(p, env)

	clone := ic.DeepCopy()
	clone.Solution.MarkUnassigned(p.Jobs[0], core.UnassignedReason{Code: core.ReasonCapacity})

	assert.Empty(t, ic.Solution.Unassigned)
	assert.Len(t, clone.Solution.Unassigned, 1)
	assert.Same(t, ic.Problem, clone.Problem)
}

func TestRouteState_IdempotentAcceptRouteState(t *testing.T) {
	p := newTestProblem()
	actor := p.Fleet[0].MaterializeActors()[0]
	rc := core.NewRouteContext(core.NewRoute(actor))

	p.Goal.AcceptRouteState(rc)
	first := rc.State.Clone()
	rc.State.MarkStale()
	p.Goal.AcceptRouteState(rc)

	assert.False(t, rc.State.IsStale())
	assert.Equal(t, first.IsStale(), rc.State.IsStale())
}

func TestActorRegistry_UsedTracking(t *testing.T) {
	p := newTestProblem()
	reg := core.NewActorRegistry(p.Fleet)
	require.Len(t, reg.Available(), 1)

	a := reg.All()[0]
	reg.MarkUsed(a)
	assert.Empty(t, reg.Available())
	assert.True(t, reg.IsUsed(a))

	reg.MarkFree(a)
	assert.Len(t, reg.Available(), 1)
}
