// File: actor.go
// Role: Actor (driver, vehicle, shift) triple and the registry tracking which
// actors are in use across a SolutionContext (§3 invariant 6).
package core

import "github.com/hashicorp/go-set/v3"

// Actor is the concrete (driver, vehicle, shift-detail) triple that executes a
// Route. Driver identity is folded into Vehicle.Dimens for this engine (no
// separate driver-cost model is in scope); Actor exists mainly to give every
// route a stable, comparable handle distinct from the Vehicle type it came
// from.
type Actor struct {
	Vehicle    *Vehicle
	ShiftIndex int
	Shift      ShiftDetail
}

// Key uniquely identifies this Actor by (vehicle_id, shift_index), the pair
// §3 invariant 6 requires to stay unique across a solution's routes.
func (a *Actor) Key() string {
	return a.Vehicle.VehicleID() + "#" + itoa(a.ShiftIndex)
}

// itoa avoids importing strconv in this tiny file's hot path; kept local and
// trivial (non-negative shift indices only).
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}

	return string(buf[i:])
}

// ActorRegistry tracks which Actors are available vs. already used by a route
// in the current SolutionContext, backed by hashicorp/go-set for O(1)
// membership and set-difference queries (available actors for a new route).
type ActorRegistry struct {
	all       []*Actor
	used      *set.Set[string]
	byKey     map[string]*Actor
	byTypeID  map[string][]*Actor
}

// NewActorRegistry builds a registry over every Actor materialized from
// vehicles (§3 "Actor ... grouped by type for selection").
func NewActorRegistry(vehicles []*Vehicle) *ActorRegistry {
	r := &ActorRegistry{
		used:     set.New[string](0),
		byKey:    make(map[string]*Actor),
		byTypeID: make(map[string][]*Actor),
	}
	for _, v := range vehicles {
		for _, a := range v.MaterializeActors() {
			r.all = append(r.all, a)
			r.byKey[a.Key()] = a
			r.byTypeID[v.TypeID()] = append(r.byTypeID[v.TypeID()], a)
		}
	}

	return r
}

// Available returns every Actor not currently assigned to a route.
func (r *ActorRegistry) Available() []*Actor {
	out := make([]*Actor, 0, len(r.all))
	for _, a := range r.all {
		if !r.used.Contains(a.Key()) {
			out = append(out, a)
		}
	}

	return out
}

// AvailableByType returns available actors restricted to one vehicle type,
// used when opening a fresh route per available actor (§4.5 "Any route").
func (r *ActorRegistry) AvailableByType(typeID string) []*Actor {
	candidates := r.byTypeID[typeID]
	out := make([]*Actor, 0, len(candidates))
	for _, a := range candidates {
		if !r.used.Contains(a.Key()) {
			out = append(out, a)
		}
	}

	return out
}

// MarkUsed records that actor now runs a route.
func (r *ActorRegistry) MarkUsed(a *Actor) { r.used.Insert(a.Key()) }

// MarkFree reverses MarkUsed (e.g. when a route becomes empty after ruin).
func (r *ActorRegistry) MarkFree(a *Actor) { r.used.Remove(a.Key()) }

// IsUsed reports whether actor currently runs a route.
func (r *ActorRegistry) IsUsed(a *Actor) bool { return r.used.Contains(a.Key()) }

// All returns every materialized actor, used or not.
func (r *ActorRegistry) All() []*Actor { return r.all }

// Clone returns a deep copy safe for independent mutation (InsertionContext
// ownership transfer, §3 "Ownership").
func (r *ActorRegistry) Clone() *ActorRegistry {
	clone := &ActorRegistry{
		all:      r.all, // Actor values themselves are treated as immutable after materialization
		used:     r.used.Copy(),
		byKey:    r.byKey,
		byTypeID: r.byTypeID,
	}

	return clone
}
