// Package core defines the canonical, immutable Problem value and the mutable
// SolutionContext/InsertionContext types the vrpcore solver engine operates on.
//
// It plays the role for vrpcore that github.com/katalvlaran/lvlath/core played for
// the graph library: one package owning the fundamental data types, with separate
// packages (transport, goal, feature, insertion, construction, ruin, population, lkh,
// solver) layered on top.
//
// Ownership:
//   - Problem is immutable once constructed and shared by reference across every
//     concurrent solution copy explored by the metaheuristic.
//   - InsertionContext is owned by exactly one worker at a time; it is moved between
//     workers via DeepCopy, never aliased.
//   - RouteContext is exclusively owned by the SolutionContext that holds it.
//
// go get github.com/katalvlaran/vrpcore/core
package core
