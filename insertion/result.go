// File: result.go
// Role: InsertionResult — the Success/Failure union §4.5 describes, plus the
// lexicographic cost-vector comparison every search variant uses to pick a
// minimum.
package insertion

import "github.com/katalvlaran/vrpcore/core"

// PlacedActivity is one activity the insertion would add, at the tour index
// it belongs at (indices are given in the order they should be applied: each
// index is valid against the tour *after* earlier placements in the same
// Success have been applied).
type PlacedActivity struct {
	Activity core.Activity
	Index    int
}

// Success describes a feasible insertion found by the search.
type Success struct {
	Cost       []float64
	Job        core.Job
	Activities []PlacedActivity
	Actor      *core.Actor
}

// Failure describes why no feasible insertion was found.
type Failure struct {
	Code    int
	Stopped bool
	Job     core.Job
}

// Result carries exactly one of Success or Failure.
type Result struct {
	Success *Success
	Failure *Failure
}

// Ok reports whether the result is a Success.
func (r Result) Ok() bool { return r.Success != nil }

// compareCost returns -1 if a<b, 1 if a>b, 0 if equal, lexicographically.
// Only the shared prefix is compared: vectors that agree on it compare equal
// whatever their lengths — in practice
// every candidate for the same job carries same-length vectors, since they
// all come from the same goal.Context's local ordering.
func compareCost(a, b []float64) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	return 0
}
