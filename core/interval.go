// File: interval.go
// Role: Route intervals — the generalization that lets a route be split by
// marker jobs (reload/recharge/dispatch) into independently-accumulated
// sub-intervals (§4.2).
package core

// RouteIntervals is a strategy, expressed as a struct of functions (mirroring
// lvlath's MSTOptions/GraphOption functional-field style) rather than an
// interface, because most callers only need to override one or two of the
// four decisions and a struct literal reads better than a four-method stub
// implementation at every call site.
type RouteIntervals struct {
	// IsMarkerJob reports whether job is a marker (reload/recharge/dispatch)
	// rather than an ordinary visit.
	IsMarkerJob func(job *Single) bool
	// IsMarkerAssignable reports whether job may be placed as a marker on rc at
	// all (e.g. a reload marker bound to a different vehicle_id is not).
	IsMarkerAssignable func(rc *RouteContext, job *Single) bool
	// NeedsNewInterval reports whether rc is close enough to some threshold
	// (capacity near-full, distance-since-charge near-max) that a new interval
	// should be opened before the next insertion.
	NeedsNewInterval func(rc *RouteContext) bool
	// IsObsoleteInterval reports whether merging the two adjacent intervals
	// [left] and [right] (each an (startIdx, endIdx) pair) would remain
	// feasible, i.e. the marker between them could be dropped.
	IsObsoleteInterval func(rc *RouteContext, left, right [2]int) bool
}

// DefaultRouteIntervals returns a RouteIntervals with conservative defaults: no
// job is ever a marker, no interval is ever obsolete. Features that introduce
// marker jobs (reload, recharge) supply their own via the With* overrides
// below.
func DefaultRouteIntervals() RouteIntervals {
	return RouteIntervals{
		IsMarkerJob:        func(*Single) bool { return false },
		IsMarkerAssignable: func(*RouteContext, *Single) bool { return true },
		NeedsNewInterval:   func(*RouteContext) bool { return false },
		IsObsoleteInterval: func(*RouteContext, [2]int, [2]int) bool { return false },
	}
}

// WithMarkerPredicate returns a copy of ri with IsMarkerJob replaced.
func (ri RouteIntervals) WithMarkerPredicate(pred func(*Single) bool) RouteIntervals {
	ri.IsMarkerJob = pred

	return ri
}

// MarkerIntervals returns the (startIdx, endIdx) activity-index pairs of every
// sub-interval of rc's tour, splitting at every activity whose job satisfies
// IsMarkerJob. Terminal activities bound the first and last interval.
//
// Complexity: O(n) where n is the tour length.
func (ri RouteIntervals) MarkerIntervals(rc *RouteContext) [][2]int {
	acts := rc.Route.Tour.Activities
	if len(acts) == 0 {
		return nil
	}
	var intervals [][2]int
	start := 0
	for i, a := range acts {
		if a.Job != nil && ri.IsMarkerJob(a.Job) {
			intervals = append(intervals, [2]int{start, i})
			start = i
		}
	}
	intervals = append(intervals, [2]int{start, len(acts) - 1})

	return intervals
}
