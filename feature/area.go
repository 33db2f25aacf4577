// File: area.go
// Role: Area feature (§4.4, supplemented per SPEC_FULL.md §4.4 from the
// dropped `hierarchical_areas.rs` scope) — a job's location must lie inside
// one of the vehicle's allowed areas, where areas form a named parent-pointer
// forest: allowing a coarse area implicitly allows every descendant.
package feature

import (
	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/goal"
)

// Polygon is a simple closed ring of locations used only as an opaque
// membership test (Contains); area membership itself is loader-defined (the
// feature only needs "is this location inside area X").
type Polygon struct {
	Name     string
	Contains func(loc core.Location) bool
}

// AreaForest is a parent-pointer forest over named areas: area X's
// descendants are every area whose parent chain passes through X.
type AreaForest struct {
	parent map[string]string
	areas  map[string]Polygon
}

// NewAreaForest builds a forest from polygons, with parent[name] giving each
// area's immediate parent ("" for a root area).
func NewAreaForest(polygons []Polygon, parent map[string]string) *AreaForest {
	areas := make(map[string]Polygon, len(polygons))
	for _, p := range polygons {
		areas[p.Name] = p
	}

	return &AreaForest{parent: parent, areas: areas}
}

// descendantOf reports whether candidate is allowed==name or a descendant of
// it (reachable by following parent pointers back to name).
func (f *AreaForest) descendantOf(candidate, name string) bool {
	for cur := candidate; cur != ""; cur = f.parent[cur] {
		if cur == name {
			return true
		}
	}

	return false
}

// Allowed reports whether loc lies inside any area in allowedNames or any of
// their descendants.
func (f *AreaForest) Allowed(loc core.Location, allowedNames []string) bool {
	for name, polygon := range f.areas {
		if polygon.Contains == nil || !polygon.Contains(loc) {
			continue
		}
		for _, allowed := range allowedNames {
			if f.descendantOf(name, allowed) {
				return true
			}
		}
	}

	return false
}

type areaConstraint struct {
	forest *AreaForest
}

func (c areaConstraint) Evaluate(mc core.MoveContext) *core.ConstraintViolation {
	if mc.Activity == nil || mc.Activity.Target == nil {
		return nil
	}
	act := mc.Activity
	raw, ok := act.Route.Route.Actor.Vehicle.Dimens[core.DimenAreas]
	if !ok {
		return nil
	}
	allowed, ok := raw.([]string)
	if !ok || len(allowed) == 0 {
		return nil
	}
	if c.forest.Allowed(act.Target.Place.Location, allowed) {
		return nil
	}

	return &core.ConstraintViolation{Code: core.ReasonArea, Stopped: true}
}

// NewArea returns the Area feature over forest.
func NewArea(forest *AreaForest) goal.Feature {
	return goal.Feature{Name: "area", Constraint: areaConstraint{forest: forest}}
}
