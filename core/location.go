package core

// Location is an integer index into a routing matrix. It carries no coordinate
// data itself; geographic projection and matrix construction are loader concerns
// (out of scope per spec.md §1).
type Location int

// Profile selects which transport matrix a vehicle (or job) uses, plus a scale
// factor applied to both distance and duration lookups from that matrix.
//
// Scale lets a heterogeneous fleet share one physical matrix while modelling,
// e.g., a slower vehicle class without duplicating the matrix.
type Profile struct {
	// Index identifies the matrix within a transport.Cost implementation.
	Index int
	// Scale multiplies both distance and duration; 0 is treated as 1 by transport.Cost
	// implementations so a zero-value Profile behaves like an unscaled profile.
	Scale float64
}

// ResolvedScale returns p.Scale, defaulting to 1 for the zero value.
func (p Profile) ResolvedScale() float64 {
	if p.Scale == 0 {
		return 1
	}

	return p.Scale
}
