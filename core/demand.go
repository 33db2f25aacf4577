// File: demand.go
// Role: Generic capacity/load model shared by the Capacity feature and vehicle
// materialization.
// Determinism: pure value types; componentwise arithmetic only.
package core

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Load is the contract a capacity dimension type must satisfy: componentwise
// addition, subtraction, comparison and a fit-check against a capacity ceiling.
// SingleLoad (scalar) and MultiLoad (fixed-width vector) are the two built-in
// implementations; callers may supply their own as long as it is comparable by
// value (required for RouteState caching).
type Load interface {
	// Add returns the componentwise sum.
	Add(other Load) Load
	// Sub returns the componentwise difference (may go negative; callers decide
	// whether that is meaningful, e.g. pickup/delivery deltas).
	Sub(other Load) Load
	// CanFit reports whether every component of l is ≤ the matching component of
	// capacity.
	CanFit(capacity Load) bool
	// IsEmpty reports whether every component is zero.
	IsEmpty() bool
}

// SingleLoad is a one-dimensional Load backed by an int64 (e.g. "weight" or
// "seats").
type SingleLoad int64

// Add implements Load.
func (l SingleLoad) Add(other Load) Load { return l + other.(SingleLoad) }

// Sub implements Load.
func (l SingleLoad) Sub(other Load) Load { return l - other.(SingleLoad) }

// CanFit implements Load.
func (l SingleLoad) CanFit(capacity Load) bool { return l <= capacity.(SingleLoad) }

// IsEmpty implements Load.
func (l SingleLoad) IsEmpty() bool { return l == 0 }

// MultiLoad is a fixed-width integer vector Load (e.g. weight+volume+pallets).
// Two MultiLoad values must share the same width to be combined; mismatched
// widths panic, matching §7 "panics are confined to programmer-invariant
// violations" — a width mismatch can only originate from a malformed Problem
// that should have failed ValidateProblem.
type MultiLoad []int64

func newNumericVector[T constraints.Integer](dims int, fill T) []T {
	v := make([]T, dims)
	for i := range v {
		v[i] = fill
	}

	return v
}

// NewMultiLoad returns a zero vector of the given width.
func NewMultiLoad(dims int) MultiLoad { return newNumericVector[int64](dims, 0) }

func (l MultiLoad) mustSameWidth(other MultiLoad) {
	if len(l) != len(other) {
		panic(fmt.Sprintf("core: MultiLoad width mismatch: %d vs %d", len(l), len(other)))
	}
}

// Add implements Load.
func (l MultiLoad) Add(other Load) Load {
	o := other.(MultiLoad)
	l.mustSameWidth(o)
	out := make(MultiLoad, len(l))
	for i := range l {
		out[i] = l[i] + o[i]
	}

	return out
}

// Sub implements Load.
func (l MultiLoad) Sub(other Load) Load {
	o := other.(MultiLoad)
	l.mustSameWidth(o)
	out := make(MultiLoad, len(l))
	for i := range l {
		out[i] = l[i] - o[i]
	}

	return out
}

// CanFit implements Load.
func (l MultiLoad) CanFit(capacity Load) bool {
	c := capacity.(MultiLoad)
	l.mustSameWidth(c)
	for i := range l {
		if l[i] > c[i] {
			return false
		}
	}

	return true
}

// IsEmpty implements Load.
func (l MultiLoad) IsEmpty() bool {
	for _, v := range l {
		if v != 0 {
			return false
		}
	}

	return true
}

// LoadPart is a (static, dynamic) pair: static load is present from the start of
// the operation, dynamic load accumulates during the tour (e.g. goods picked up
// en route and carried onward).
type LoadPart struct {
	Static  Load
	Dynamic Load
}

// Total returns Static + Dynamic.
func (p LoadPart) Total() Load {
	if p.Static == nil {
		return p.Dynamic
	}
	if p.Dynamic == nil {
		return p.Static
	}

	return p.Static.Add(p.Dynamic)
}

// Demand is a (pickup, delivery) pair of LoadPart, describing how a job changes
// a vehicle's carried load.
type Demand struct {
	Pickup   LoadPart
	Delivery LoadPart
}

// IsEmpty reports whether the demand has no pickup and no delivery component.
func (d Demand) IsEmpty() bool {
	pickupEmpty := d.Pickup.Static == nil || d.Pickup.Static.IsEmpty()
	deliveryEmpty := d.Delivery.Static == nil || d.Delivery.Static.IsEmpty()
	pickupDynEmpty := d.Pickup.Dynamic == nil || d.Pickup.Dynamic.IsEmpty()
	deliveryDynEmpty := d.Delivery.Dynamic == nil || d.Delivery.Dynamic.IsEmpty()

	return pickupEmpty && deliveryEmpty && pickupDynEmpty && deliveryDynEmpty
}
