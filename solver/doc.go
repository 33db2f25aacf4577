// Package solver implements the metaheuristic loop of spec.md §4.8: select a
// parent from the population, mutate it (ruin+recreate, an LKH reorder, or a
// diversify operator when the search has stalled), score the candidate, offer
// it to the population, report telemetry, and consult termination — repeat
// until cancelled or a termination predicate fires.
package solver
