// File: matrix.go
// Role: Flat row-major distance/duration matrices, one pair per profile.
// Design: mirrors matrix.BuildDenseAdjacency's fail-fast validation discipline
// from the teacher module — construction rejects shape mismatches immediately
// rather than deferring to first lookup.
package transport

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/vrpcore/core"
)

// Unreachable is the sentinel distance/duration returned for a pair with no
// feasible path (§4.1 "Unreachable pairs ... return -1.0 or a sentinel treated
// as infinite"). vrpcore treats it as +Inf so ordinary float comparisons
// (cost accumulation, 2-opt delta checks) naturally reject it.
const Unreachable = math.MaxFloat64

// ErrProfileMatrixMismatch is returned when the number of supplied matrices
// does not match the declared profile count.
var ErrProfileMatrixMismatch = errors.New("transport: profile count does not match matrix count")

// ErrNonSquareMatrix is returned when a matrix is not size×size.
var ErrNonSquareMatrix = errors.New("transport: matrix is not square")

// profileMatrix holds one profile's duration/distance tables plus its side
// length, row-major: value at (from,to) is data[from*size+to].
type profileMatrix struct {
	size     int
	duration []float64
	distance []float64
}

// Matrix is the flat, time-independent transport.Cost implementation (§4.1).
type Matrix struct {
	profiles []profileMatrix
}

// NewMatrix builds a Matrix from one (duration, distance) pair of size×size
// row-major float64 slices per profile, with a positive errorCode marking an
// unreachable cell (converted to Unreachable on construction so lookups never
// re-check it).
//
// Complexity: O(sum of size²) to scan for error codes.
func NewMatrix(durations, distances [][]float64, errorCodes [][]int) (*Matrix, error) {
	if len(durations) != len(distances) {
		return nil, ErrProfileMatrixMismatch
	}
	m := &Matrix{profiles: make([]profileMatrix, len(durations))}
	for p := range durations {
		size := int(math.Sqrt(float64(len(durations[p]))))
		if size*size != len(durations[p]) || len(durations[p]) != len(distances[p]) {
			return nil, fmt.Errorf("transport: profile %d: %w", p, ErrNonSquareMatrix)
		}
		dur := append([]float64(nil), durations[p]...)
		dist := append([]float64(nil), distances[p]...)
		if p < len(errorCodes) {
			for i, code := range errorCodes[p] {
				if code > 0 && i < len(dur) {
					dur[i] = Unreachable
					dist[i] = Unreachable
				}
			}
		}
		m.profiles[p] = profileMatrix{size: size, duration: dur, distance: dist}
	}

	return m, nil
}

// Size returns the number of distinct locations profile.Index covers.
func (m *Matrix) Size(profile core.Profile) int {
	if profile.Index < 0 || profile.Index >= len(m.profiles) {
		return 0
	}

	return m.profiles[profile.Index].size
}

func (m *Matrix) lookup(table []float64, size int, from, to core.Location) float64 {
	f, t := int(from), int(to)
	if f < 0 || t < 0 || f >= size || t >= size {
		return Unreachable
	}

	return table[f*size+t]
}

// Distance implements core.TransportCost.
func (m *Matrix) Distance(profile core.Profile, from, to core.Location, _ float64) float64 {
	pm := m.profileAt(profile)
	v := m.lookup(pm.distance, pm.size, from, to)
	if v == Unreachable {
		return v
	}

	return v * profile.ResolvedScale()
}

// Duration implements core.TransportCost.
func (m *Matrix) Duration(profile core.Profile, from, to core.Location, _ float64) float64 {
	pm := m.profileAt(profile)
	v := m.lookup(pm.duration, pm.size, from, to)
	if v == Unreachable {
		return v
	}

	return v * profile.ResolvedScale()
}

// DistanceApprox implements core.TransportCost, ignoring time entirely (§4.1).
func (m *Matrix) DistanceApprox(profile core.Profile, from, to core.Location) float64 {
	return m.Distance(profile, from, to, 0)
}

func (m *Matrix) profileAt(profile core.Profile) profileMatrix {
	if profile.Index < 0 || profile.Index >= len(m.profiles) {
		return profileMatrix{}
	}

	return m.profiles[profile.Index]
}

var _ core.TransportCost = (*Matrix)(nil)
