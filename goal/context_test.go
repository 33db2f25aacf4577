package goal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/goal"
)

type constFitness float64

func (c constFitness) Fitness(*core.InsertionContext) float64 { return float64(c) }
func (c constFitness) Estimate(core.MoveContext) float64      { return float64(c) }

type fixedViolation struct{ code int }

func (f fixedViolation) Evaluate(core.MoveContext) *core.ConstraintViolation {
	return &core.ConstraintViolation{Code: f.code, Stopped: true}
}

func TestContext_EvaluateShortCircuitsOnFirstFailure(t *testing.T) {
	ctx := goal.NewContext([]goal.Feature{
		{Name: "ok"},
		{Name: "blocks", Constraint: fixedViolation{code: 7}},
		{Name: "never-reached", Constraint: fixedViolation{code: 99}},
	}, nil, nil)

	v := ctx.Evaluate(core.MoveContext{})
	require.NotNil(t, v)
	assert.Equal(t, 7, v.Code)
}

func TestContext_EstimateFollowsLocalOrder(t *testing.T) {
	ctx := goal.NewContext([]goal.Feature{
		{Name: "distance", Objective: constFitness(3)},
		{Name: "duration", Objective: constFitness(5)},
	}, nil, []string{"duration", "distance"})

	assert.Equal(t, []float64{5, 3}, ctx.Estimate(core.MoveContext{}))
}

func TestContext_TotalOrderComparesGroupsLexicographically(t *testing.T) {
	ctx := goal.NewContext([]goal.Feature{
		{Name: "unassigned", Objective: constFitness(0)},
		{Name: "distance", Objective: constFitness(0)},
	}, [][]string{{"unassigned"}, {"distance"}}, nil)

	// both contexts are cheap stand-ins; the Fitness values come entirely
	// from the constant objectives above, so the ic pointers themselves only
	// need to be distinct, not populated.
	a := &core.InsertionContext{}
	b := &core.InsertionContext{}
	assert.Equal(t, 0, ctx.TotalOrder(a, b))
}

type recordingState struct {
	insertions int
	routes     int
	solutions  int
}

func (r *recordingState) AcceptInsertion(*core.SolutionContext, int, core.Job) { r.insertions++ }
func (r *recordingState) AcceptRouteState(*core.RouteContext)                 { r.routes++ }
func (r *recordingState) AcceptSolutionState(*core.SolutionContext)           { r.solutions++ }

func TestContext_AcceptHooksNotifyEveryFeature(t *testing.T) {
	rs := &recordingState{}
	ctx := goal.NewContext([]goal.Feature{{Name: "tracker", State: rs}}, nil, nil)

	v := &core.Vehicle{Capacity: core.SingleLoad(1), Details: []core.ShiftDetail{{}}}
	actor := v.MaterializeActors()[0]
	rc := core.NewRouteContext(core.NewRoute(actor))

	ctx.AcceptInsertion(nil, 0, nil)
	ctx.AcceptRouteState(rc)
	ctx.AcceptSolutionState(nil)

	assert.Equal(t, 1, rs.insertions)
	assert.Equal(t, 1, rs.routes)
	assert.Equal(t, 1, rs.solutions)
	assert.False(t, rc.State.IsStale())
}

type mergeOnce struct{ called bool }

func (m *mergeOnce) Merge(source, _ core.Job) (core.Job, bool) {
	m.called = true

	return source, true
}

func TestContext_MergeStopsAtFirstAcceptingFeature(t *testing.T) {
	first := &mergeOnce{}
	second := &mergeOnce{}
	ctx := goal.NewContext([]goal.Feature{
		{Name: "a", Merger: first},
		{Name: "b", Merger: second},
	}, nil, nil)

	_, ok := ctx.Merge(nil, nil)
	assert.True(t, ok)
	assert.True(t, first.called)
	assert.False(t, second.called)
}
