// File: feature.go
// Role: Feature contract — the three optional parts a Feature may supply
// (§4.3): a hard constraint, a cost objective, and state bookkeeping.
package goal

import "github.com/katalvlaran/vrpcore/core"

// FeatureConstraint is the hard-rule part of a Feature. Evaluate returns nil
// when the move is feasible, or a violation describing why not.
type FeatureConstraint interface {
	Evaluate(moveCtx core.MoveContext) *core.ConstraintViolation
}

// FeatureObjective is the cost part of a Feature. Lower is better in both
// methods.
type FeatureObjective interface {
	// Fitness scores a complete solution.
	Fitness(ic *core.InsertionContext) float64
	// Estimate scores a single candidate move during insertion search.
	Estimate(moveCtx core.MoveContext) float64
}

// FeatureState is the bookkeeping part of a Feature: it reacts to insertions
// and recomputes derived route/solution state.
type FeatureState interface {
	AcceptInsertion(sc *core.SolutionContext, routeIndex int, job core.Job)
	AcceptRouteState(rc *core.RouteContext)
	AcceptSolutionState(sc *core.SolutionContext)
}

// FeatureMerger lets a Feature veto or allow collapsing two jobs into one
// during job-clustering preprocessing.
type FeatureMerger interface {
	Merge(source, candidate core.Job) (core.Job, bool)
}

// Feature is one named unit of VRP-variant behavior. Every field besides Name
// is optional; a Feature that supplies none of them is a no-op placeholder
// (useful for reserving a name in an ordering before its implementation
// lands).
type Feature struct {
	Name       string
	Constraint FeatureConstraint
	Objective  FeatureObjective
	State      FeatureState
	Merger     FeatureMerger
}
