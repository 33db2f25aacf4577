// File: state.go
// Role: Typed key→value state cache attached to a route (or a whole solution),
// plus the compact integer key registry goal construction uses to hand out
// keys without a global singleton (§9).
// Concurrency: StateStore itself holds no lock; callers own one StateStore per
// route/solution and synchronize at a higher level (InsertionContext is
// single-owner, per §3).
package core

// StateKey is a compact integer handle for a piece of per-route or per-solution
// derived state (latest-arrival, accumulated load, ...). Keys are allocated by
// StateKeyRegistry at goal-construction time, one per feature that writes state.
type StateKey int

// StateKeyRegistry hands out stable StateKeys by name, so a feature can request
// "my key" once at construction and reuse it, without any package-level
// variable collisions across independently constructed GoalContexts.
type StateKeyRegistry struct {
	byName map[string]StateKey
	names  []string
}

// NewStateKeyRegistry returns an empty registry.
func NewStateKeyRegistry() *StateKeyRegistry {
	return &StateKeyRegistry{byName: make(map[string]StateKey)}
}

// Register returns the StateKey for name, allocating a new one the first time
// name is seen and returning the same key on every subsequent call.
func (r *StateKeyRegistry) Register(name string) StateKey {
	if k, ok := r.byName[name]; ok {
		return k
	}
	k := StateKey(len(r.names))
	r.names = append(r.names, name)
	r.byName[name] = k

	return k
}

// Name returns the human-readable name a key was registered under, for
// diagnostics; returns "" for an unknown key.
func (r *StateKeyRegistry) Name(key StateKey) string {
	if int(key) < 0 || int(key) >= len(r.names) {
		return ""
	}

	return r.names[key]
}

// StateStore is a typed dictionary keyed by StateKey, holding either one
// scalar value (e.g. "total accumulated distance") or one vector indexed by
// tour activity position (e.g. "latest arrival per activity"). A single
// instance backs both RouteState (per route, with a stale flag) and solution-
// level feature state (no stale flag use).
type StateStore struct {
	scalars map[StateKey]interface{}
	vectors map[StateKey][]interface{}
	stale   bool
}

// RouteState is a StateStore attached to one Route; stale tracks whether the
// cached values still reflect the route's current activities.
type RouteState = StateStore

// NewStateStore returns an empty, non-stale StateStore.
func NewStateStore() *StateStore {
	return &StateStore{
		scalars: make(map[StateKey]interface{}),
		vectors: make(map[StateKey][]interface{}),
	}
}

// MarkStale flags the store for recomputation on the next accept_route_state
// pass (§4.2).
func (s *StateStore) MarkStale() { s.stale = true }

// IsStale reports whether the store needs recomputation.
func (s *StateStore) IsStale() bool { return s.stale }

// ClearStale marks the store fresh; called by the owning feature state
// updater once it has finished recomputing.
func (s *StateStore) ClearStale() { s.stale = false }

// SetScalarRaw stores v under key. Prefer the generic SetScalar/GetScalar
// helpers below for typed access.
func (s *StateStore) SetScalarRaw(key StateKey, v interface{}) { s.scalars[key] = v }

// ScalarRaw returns the raw value stored at key.
func (s *StateStore) ScalarRaw(key StateKey) (interface{}, bool) {
	v, ok := s.scalars[key]

	return v, ok
}

// SetVector replaces the whole per-activity vector stored at key.
func (s *StateStore) SetVector(key StateKey, v []interface{}) { s.vectors[key] = v }

// VectorRaw returns the raw per-activity vector stored at key.
func (s *StateStore) VectorRaw(key StateKey) ([]interface{}, bool) {
	v, ok := s.vectors[key]

	return v, ok
}

// Clone returns a deep-enough copy for independent mutation: scalar/vector
// maps are copied, element values are assumed immutable (they are always
// plain numbers or small value structs written by feature state updaters).
func (s *StateStore) Clone() *StateStore {
	clone := NewStateStore()
	for k, v := range s.scalars {
		clone.scalars[k] = v
	}
	for k, v := range s.vectors {
		cp := make([]interface{}, len(v))
		copy(cp, v)
		clone.vectors[k] = cp
	}
	clone.stale = s.stale

	return clone
}

// GetScalar is a generic typed accessor over StateStore.ScalarRaw.
func GetScalar[T any](s *StateStore, key StateKey) (T, bool) {
	var zero T
	raw, ok := s.ScalarRaw(key)
	if !ok {
		return zero, false
	}
	typed, ok := raw.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}

// SetScalar is a generic typed setter mirroring GetScalar.
func SetScalar[T any](s *StateStore, key StateKey, v T) { s.SetScalarRaw(key, v) }

// GetVectorAt is a generic typed accessor for one element of a per-activity
// vector; returns ok=false if the vector is absent, short, or the element has
// the wrong type.
func GetVectorAt[T any](s *StateStore, key StateKey, idx int) (T, bool) {
	var zero T
	v, ok := s.VectorRaw(key)
	if !ok || idx < 0 || idx >= len(v) {
		return zero, false
	}
	typed, ok := v[idx].(T)
	if !ok {
		return zero, false
	}

	return typed, true
}

// RouteContext pairs a Route with its RouteState, the exclusive-ownership unit
// described in spec.md §3.
type RouteContext struct {
	Route *Route
	State *RouteState
}

// NewRouteContext wraps route in a fresh, stale RouteContext so the next
// accept_route_state pass computes its state from scratch.
func NewRouteContext(route *Route) *RouteContext {
	rc := &RouteContext{Route: route, State: NewStateStore()}
	rc.State.MarkStale()

	return rc
}

// Clone returns an independent RouteContext sharing no mutable state with the
// receiver (Tour/Activities are copied by value where possible since Activity
// holds no pointers into shared structures other than *Single, which is
// treated as immutable problem data).
func (rc *RouteContext) Clone() *RouteContext {
	tour := &Tour{Closed: rc.Route.Tour.Closed, Activities: make([]Activity, len(rc.Route.Tour.Activities))}
	copy(tour.Activities, rc.Route.Tour.Activities)

	return &RouteContext{
		Route: &Route{Actor: rc.Route.Actor, Tour: tour},
		State: rc.State.Clone(),
	}
}
