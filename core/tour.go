// File: tour.go
// Role: Activity/Tour/Route types — the ordered sequence of visits an Actor
// performs, plus the Route wrapper pairing an Actor with its Tour.
package core

// Schedule is an activity's planned arrival/departure, both on the same
// continuous time axis as TimeWindow.
type Schedule struct {
	Arrival   float64
	Departure float64
}

// Activity is one stop within a Tour: a vehicle terminal (start/end), a marker
// job (reload/recharge/dispatch), or a job visit (pickup/delivery/service).
// Job is nil for start/end terminals.
type Activity struct {
	Place    Place
	Schedule Schedule
	Job      *Single
	// Commute, when non-nil, records an extra travel leg inserted between the
	// previous activity and this one by a clustering preprocessing step (§9
	// open question: "commute visualization ... unsupported" at the loader
	// layer; the core type exists so a loader MAY populate it without the
	// engine needing to understand its internals beyond travel contribution).
	Commute *CommuteLeg
}

// CommuteLeg is an auxiliary travel segment attached to an Activity.
type CommuteLeg struct {
	Distance float64
	Duration float64
}

// ActivityType returns the classification of this activity: the Job's
// DimenActivityType if Job is set, ActivityDeparture/ActivityArrival for
// terminals (distinguished by position, resolved by the caller via Tour index).
func (a Activity) ActivityType() ActivityType {
	if a.Job == nil {
		return ActivityDeparture // caller overrides to ActivityArrival for the last stop
	}

	return a.Job.Dimens.GetActivityType()
}

// Tour is the ordered sequence of Activities an Actor performs: Activities[0]
// is always the start terminal; if Closed, the last element is the end
// terminal.
type Tour struct {
	Activities []Activity
	Closed     bool
}

// Len returns the number of activities, including terminals.
func (t *Tour) Len() int { return len(t.Activities) }

// JobActivityIndices returns the indices of every Activity carrying a job,
// i.e. excluding the start/end terminals.
func (t *Tour) JobActivityIndices() []int {
	out := make([]int, 0, len(t.Activities))
	for i, a := range t.Activities {
		if a.Job != nil {
			out = append(out, i)
		}
	}

	return out
}

// InsertAt inserts activity at position idx (0-based, may equal len to append
// at the tail before a closing terminal is accounted for by the caller).
func (t *Tour) InsertAt(idx int, activity Activity) {
	t.Activities = append(t.Activities, Activity{})
	copy(t.Activities[idx+1:], t.Activities[idx:])
	t.Activities[idx] = activity
}

// RemoveAt removes the activity at idx and returns it.
func (t *Tour) RemoveAt(idx int) Activity {
	removed := t.Activities[idx]
	t.Activities = append(t.Activities[:idx], t.Activities[idx+1:]...)

	return removed
}

// Route pairs an Actor with the Tour it runs.
type Route struct {
	Actor *Actor
	Tour  *Tour
}

// NewRoute builds an empty route for actor: a start terminal, and an end
// terminal only when the shift is closed (§3 "open routes have no end").
func NewRoute(actor *Actor) *Route {
	tour := &Tour{Closed: actor.Shift.HasEnd}
	tour.Activities = append(tour.Activities, Activity{
		Place: Place{Location: actor.Shift.Start},
	})
	if actor.Shift.HasEnd {
		tour.Activities = append(tour.Activities, Activity{
			Place: Place{Location: actor.Shift.End},
		})
	}

	return &Route{Actor: actor, Tour: tour}
}

// IsEmpty reports whether the route carries no job activities.
func (r *Route) IsEmpty() bool { return len(r.Tour.JobActivityIndices()) == 0 }
