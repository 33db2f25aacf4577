package core

// Place is one candidate visit location for a Single job: where to go, how long
// the visit takes, and which time windows it may start within. A Single job may
// list several alternative Places; the insertion heuristic picks the cheapest
// feasible one.
type Place struct {
	Location Location
	Duration float64
	Times    []TimeSpan
	// Tag identifies this place among a Single's alternatives (e.g. "front-door"
	// vs "loading-dock"); stored into the resulting Activity's Dimens under
	// DimenPlaceTag so checkers can report which alternative was used.
	Tag string
}

// ResolvedWindows resolves every TimeSpan in Times against shiftStart.
func (p Place) ResolvedWindows(shiftStart float64) []TimeWindow {
	if len(p.Times) == 0 {
		return []TimeWindow{UnboundedTimeWindow()}
	}
	out := make([]TimeWindow, len(p.Times))
	for i, ts := range p.Times {
		out[i] = ts.Resolve(shiftStart)
	}

	return out
}
