package population_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/population"
)

type fixedGoal struct {
	fitness map[*core.InsertionContext][]float64
}

func (g fixedGoal) Evaluate(core.MoveContext) *core.ConstraintViolation { return nil }
func (g fixedGoal) Estimate(core.MoveContext) []float64                { return nil }
func (g fixedGoal) Fitness(ic *core.InsertionContext) []float64        { return g.fitness[ic] }
func (g fixedGoal) TotalOrder(a, b *core.InsertionContext) int {
	fa, fb := g.fitness[a], g.fitness[b]
	aBetter, bBetter := false, false
	for i := 0; i < len(fa) && i < len(fb); i++ {
		if fa[i] < fb[i] {
			aBetter = true
		} else if fa[i] > fb[i] {
			bBetter = true
		}
	}
	switch {
	case aBetter && !bBetter:
		return -1
	case bBetter && !aBetter:
		return 1
	default:
		return 0
	}
}
func (g fixedGoal) Merge(source, candidate core.Job) (core.Job, bool) { return nil, false }
func (g fixedGoal) AcceptInsertion(*core.SolutionContext, int, core.Job) {}
func (g fixedGoal) AcceptRouteState(*core.RouteContext)                  {}
func (g fixedGoal) AcceptSolutionState(*core.SolutionContext)            {}

func newIC(t *testing.T) *core.InsertionContext {
	t.Helper()

	return &core.InsertionContext{
		Problem:  &core.Problem{},
		Solution: &core.SolutionContext{},
	}
}

func TestElitism_RejectsDominatedSolutions(t *testing.T) {
	a, b := newIC(t), newIC(t)
	goalCtx := fixedGoal{fitness: map[*core.InsertionContext][]float64{
		a: {10, 10},
		b: {20, 20}, // strictly worse than a on both objectives
	}}

	e := population.NewElitism(goalCtx, 5)
	require.True(t, e.Add(a))
	assert.False(t, e.Add(b))
	assert.Equal(t, 1, e.Len())
}

func TestElitism_KeepsIncomparableSolutions(t *testing.T) {
	a, b := newIC(t), newIC(t)
	goalCtx := fixedGoal{fitness: map[*core.InsertionContext][]float64{
		a: {10, 20},
		b: {20, 10}, // incomparable: neither dominates
	}}

	e := population.NewElitism(goalCtx, 5)
	require.True(t, e.Add(a))
	assert.True(t, e.Add(b))
	assert.Equal(t, 2, e.Len())
}

func TestElitism_SelectReturnsRequestedCount(t *testing.T) {
	a, b, c := newIC(t), newIC(t), newIC(t)
	goalCtx := fixedGoal{fitness: map[*core.InsertionContext][]float64{
		a: {1, 10}, b: {5, 5}, c: {10, 1},
	}}
	e := population.NewElitism(goalCtx, 5)
	e.Add(a)
	e.Add(b)
	e.Add(c)

	env := core.NewEnvironment(1)
	selected := e.Select(2, env)
	assert.Len(t, selected, 2)
}

func TestRosomaxa_GrowsNodesUpToMax(t *testing.T) {
	goalCtx := fixedGoal{fitness: map[*core.InsertionContext][]float64{}}
	weights := make(map[*core.InsertionContext][]float64)
	weightFunc := func(ic *core.InsertionContext) []float64 { return weights[ic] }

	r := population.NewRosomaxa(goalCtx, weightFunc, 3, 0.5, 10)
	for i := 0; i < 5; i++ {
		ic := newIC(t)
		weights[ic] = []float64{float64(i) * 10, float64(i) * 10}
		goalCtx.fitness[ic] = []float64{float64(i)}
		r.Add(ic)
	}

	assert.LessOrEqual(t, r.NodeCount(), 3)
}

func TestRosomaxa_SelectReturnsMembers(t *testing.T) {
	goalCtx := fixedGoal{fitness: map[*core.InsertionContext][]float64{}}
	weights := make(map[*core.InsertionContext][]float64)
	weightFunc := func(ic *core.InsertionContext) []float64 { return weights[ic] }

	r := population.NewRosomaxa(goalCtx, weightFunc, 4, 100, 10)
	ic := newIC(t)
	weights[ic] = []float64{1, 1}
	goalCtx.fitness[ic] = []float64{1}
	r.Add(ic)

	env := core.NewEnvironment(2)
	selected := r.Select(1, env)
	require.Len(t, selected, 1)
	assert.Same(t, ic, selected[0])
}
