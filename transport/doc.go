// Package transport implements core.TransportCost: distance/duration lookup
// over flat, row-major routing matrices, with an optional time-aware variant
// that picks the matrix snapshot in effect at a given departure time.
//
// This plays the role github.com/katalvlaran/lvlath/matrix played for the
// graph library (dense matrix storage + strict construction-time validation),
// adapted from adjacency matrices over a core.Graph to distance/duration
// matrices over a fixed set of core.Location indices.
package transport
