// File: timeaware.go
// Role: Time-aware transport cost — a sorted list of (timestamp, Matrix)
// snapshots per profile; lookup picks the highest timestamp ≤ departure.
package transport

import (
	"sort"

	"github.com/katalvlaran/vrpcore/core"
)

// Snapshot is one timestamped matrix set for a single profile.
type Snapshot struct {
	Timestamp float64
	Matrix    *Matrix
}

// TimeAwareMatrix implements core.TransportCost over per-profile sorted
// snapshot lists (§4.1).
type TimeAwareMatrix struct {
	snapshots map[int][]Snapshot // profile index -> snapshots sorted by Timestamp
}

// NewTimeAwareMatrix builds a TimeAwareMatrix from an unsorted snapshot list
// per profile index, sorting each list by Timestamp.
func NewTimeAwareMatrix(snapshotsByProfile map[int][]Snapshot) *TimeAwareMatrix {
	tam := &TimeAwareMatrix{snapshots: make(map[int][]Snapshot, len(snapshotsByProfile))}
	for profile, snaps := range snapshotsByProfile {
		sorted := append([]Snapshot(nil), snaps...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Timestamp < sorted[j].Timestamp })
		tam.snapshots[profile] = sorted
	}

	return tam
}

// snapshotAt returns the snapshot in effect at departure for profile.Index:
// the one with the highest Timestamp ≤ departure, or the earliest snapshot if
// departure precedes all of them.
func (t *TimeAwareMatrix) snapshotAt(profile core.Profile, departure float64) *Matrix {
	snaps := t.snapshots[profile.Index]
	if len(snaps) == 0 {
		return nil
	}
	// binary search for the rightmost snapshot with Timestamp <= departure
	idx := sort.Search(len(snaps), func(i int) bool { return snaps[i].Timestamp > departure })
	if idx == 0 {
		return snaps[0].Matrix
	}

	return snaps[idx-1].Matrix
}

// Distance implements core.TransportCost.
func (t *TimeAwareMatrix) Distance(profile core.Profile, from, to core.Location, departure float64) float64 {
	m := t.snapshotAt(profile, departure)
	if m == nil {
		return Unreachable
	}

	return m.Distance(profile, from, to, departure)
}

// Duration implements core.TransportCost.
func (t *TimeAwareMatrix) Duration(profile core.Profile, from, to core.Location, departure float64) float64 {
	m := t.snapshotAt(profile, departure)
	if m == nil {
		return Unreachable
	}

	return m.Duration(profile, from, to, departure)
}

// DistanceApprox implements core.TransportCost using the earliest snapshot,
// ignoring time entirely (§4.1).
func (t *TimeAwareMatrix) DistanceApprox(profile core.Profile, from, to core.Location) float64 {
	snaps := t.snapshots[profile.Index]
	if len(snaps) == 0 {
		return Unreachable
	}

	return snaps[0].Matrix.DistanceApprox(profile, from, to)
}

// SnapshotIndexAt returns the index into the profile's sorted snapshot list in
// effect at departure, used by the recharge feature's "never merge intervals
// across different snapshots" rule (SPEC_FULL.md §9).
func (t *TimeAwareMatrix) SnapshotIndexAt(profile core.Profile, departure float64) int {
	snaps := t.snapshots[profile.Index]
	if len(snaps) == 0 {
		return -1
	}
	idx := sort.Search(len(snaps), func(i int) bool { return snaps[i].Timestamp > departure })
	if idx == 0 {
		return 0
	}

	return idx - 1
}

var _ core.TransportCost = (*TimeAwareMatrix)(nil)
