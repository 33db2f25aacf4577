// File: context.go
// Role: Context composes a Feature list plus a global/local ordering into a
// core.GoalContext (§4.3). It is the one place all VRP variants converge: the
// heuristic engine only ever talks to this type, never to individual
// features.
package goal

import "github.com/katalvlaran/vrpcore/core"

// Context implements core.GoalContext over a registered Feature list.
//
// Determinism: iteration is always in registration order; global/local
// ordering is fixed at construction and never mutated at runtime.
type Context struct {
	features []Feature
	byName   map[string]Feature

	// global is the list of objective-name groups compared lexicographically
	// group-by-group in TotalOrder; within a group, values are compared by
	// Pareto dominance rather than summed.
	global [][]string
	// local is the subset and order of objective names used by Estimate when
	// scoring a single candidate move during insertion search.
	local []string
}

// NewContext builds a Context from features in registration order, a global
// ordering (groups of objective names, compared lexicographically) and a
// local ordering (objective names, compared lexicographically during
// insertion search). Both orderings reference Feature.Name/Objective pairs;
// a name with no registered objective contributes a zero to every vector
// position it occupies.
func NewContext(features []Feature, global [][]string, local []string) *Context {
	byName := make(map[string]Feature, len(features))
	for _, f := range features {
		byName[f.Name] = f
	}

	return &Context{features: features, byName: byName, global: global, local: local}
}

// Evaluate implements core.GoalContext: constraints run in registration
// order, first failure short-circuits.
func (c *Context) Evaluate(moveCtx core.MoveContext) *core.ConstraintViolation {
	for _, f := range c.features {
		if f.Constraint == nil {
			continue
		}
		if v := f.Constraint.Evaluate(moveCtx); v != nil {
			return v
		}
	}

	return nil
}

// Estimate implements core.GoalContext: one scalar per name in the local
// ordering, each from that name's registered FeatureObjective.
func (c *Context) Estimate(moveCtx core.MoveContext) []float64 {
	out := make([]float64, len(c.local))
	for i, name := range c.local {
		f, ok := c.byName[name]
		if !ok || f.Objective == nil {
			continue
		}
		out[i] = f.Objective.Estimate(moveCtx)
	}

	return out
}

// Fitness implements core.GoalContext, flattening the global groups in order:
// position i within the flattened vector is objective c.global[g][i] for
// whichever group g it belongs to. TotalOrder is what actually interprets the
// group boundaries; Fitness alone is just the raw values in global order.
func (c *Context) Fitness(ic *core.InsertionContext) []float64 {
	var out []float64
	for _, group := range c.global {
		out = append(out, c.groupVector(ic, group)...)
	}

	return out
}

func (c *Context) groupVector(ic *core.InsertionContext, group []string) []float64 {
	vec := make([]float64, len(group))
	for i, name := range group {
		f, ok := c.byName[name]
		if !ok || f.Objective == nil {
			continue
		}
		vec[i] = f.Objective.Fitness(ic)
	}

	return vec
}

// TotalOrder implements core.GoalContext: groups are compared lexicographically
// in order; within a group, values are compared by Pareto dominance. The
// first group that decides (non-zero) settles the comparison.
func (c *Context) TotalOrder(a, b *core.InsertionContext) int {
	for _, group := range c.global {
		av := c.groupVector(a, group)
		bv := c.groupVector(b, group)
		if cmp := dominance(av, bv); cmp != 0 {
			return cmp
		}
	}

	return 0
}

// dominance returns -1 if a dominates b (every component <=, at least one <),
// 1 if b dominates a, 0 if neither dominates (a tie for this group).
func dominance(a, b []float64) int {
	aBetter, bBetter := false, false
	for i := range a {
		switch {
		case a[i] < b[i]:
			aBetter = true
		case a[i] > b[i]:
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

// Merge implements core.GoalContext: every feature with a Merger gets a
// chance, in registration order; the first that accepts wins.
func (c *Context) Merge(source, candidate core.Job) (core.Job, bool) {
	for _, f := range c.features {
		if f.Merger == nil {
			continue
		}
		if merged, ok := f.Merger.Merge(source, candidate); ok {
			return merged, true
		}
	}

	return source, false
}

// AcceptInsertion implements core.GoalContext, notifying every feature with
// state in registration order.
func (c *Context) AcceptInsertion(sc *core.SolutionContext, routeIndex int, job core.Job) {
	for _, f := range c.features {
		if f.State != nil {
			f.State.AcceptInsertion(sc, routeIndex, job)
		}
	}
}

// AcceptRouteState implements core.GoalContext.
func (c *Context) AcceptRouteState(rc *core.RouteContext) {
	for _, f := range c.features {
		if f.State != nil {
			f.State.AcceptRouteState(rc)
		}
	}
	rc.State.ClearStale()
}

// AcceptSolutionState implements core.GoalContext.
func (c *Context) AcceptSolutionState(sc *core.SolutionContext) {
	for _, f := range c.features {
		if f.State != nil {
			f.State.AcceptSolutionState(sc)
		}
	}
}

var _ core.GoalContext = (*Context)(nil)
