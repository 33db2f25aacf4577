// File: goal.go
// Role: The minimal surface core.Problem needs from the feature/goal
// composition (package goal implements GoalContext). Declaring the interface
// here — rather than importing package goal from core — avoids an import
// cycle, the same trick lvlath uses by keeping algorithm-facing contracts
// (e.g. matrix.Matrix) next to the types they operate on instead of reaching
// upward for them.
package core

// RouteMoveContext is the route-level MoveContext variant: a route-wide
// decision about whether/how cheaply job fits on route at all (used by
// "any route" insertion search and by merge()).
type RouteMoveContext struct {
	Solution *SolutionContext
	Route    *RouteContext
	Job      Job
}

// ActivityMoveContext is the per-position MoveContext variant: a decision about
// inserting at one specific index between prev and next.
type ActivityMoveContext struct {
	Route  *RouteContext
	Index  int
	Prev   *Activity
	Target *Activity
	Next   *Activity
}

// MoveContext carries exactly one of Route or Activity, matching §4.3.
type MoveContext struct {
	Route    *RouteMoveContext
	Activity *ActivityMoveContext
}

// ConstraintViolation is a hard-rule failure signal: Code identifies which
// feature raised it (for UnassignmentReason reporting) and Stopped forbids
// further insertion attempts of the same job on the same route when true
// (§4.3, used for capacity-exhausted cases).
type ConstraintViolation struct {
	Code    int
	Stopped bool
}

// GoalContext is the composed feature set that defines what "better" means
// for this Problem: hard constraints, a cost estimate, and solution ordering.
// Package goal's Context type implements this; package core never constructs
// one.
type GoalContext interface {
	// Evaluate runs every registered constraint in order; returns the first
	// violation, or nil if the move is legal.
	Evaluate(mc MoveContext) *ConstraintViolation
	// Estimate returns a lexicographic cost vector for mc, ordered by the
	// local plan (§4.3).
	Estimate(mc MoveContext) []float64
	// Fitness returns ic's objective vector, ordered by the global plan.
	Fitness(ic *InsertionContext) []float64
	// TotalOrder compares two solutions by the global plan; <0 if a is better,
	// 0 if incomparable/tied, >0 if b is better.
	TotalOrder(a, b *InsertionContext) int
	// Merge asks every constraint whether candidate may be folded into source
	// as one job, for clustering preprocessing.
	Merge(source, candidate Job) (Job, bool)
	// AcceptInsertion notifies every feature state updater that job was placed
	// onto solution.Routes[routeIndex].
	AcceptInsertion(solution *SolutionContext, routeIndex int, job Job)
	// AcceptRouteState recomputes every feature's derived state for rc if
	// rc.State.IsStale(), then clears the flag.
	AcceptRouteState(rc *RouteContext)
	// AcceptSolutionState recomputes solution-wide derived state (e.g. the
	// breaks feature's removal of optional-break Unassigned entries).
	AcceptSolutionState(sc *SolutionContext)
}
