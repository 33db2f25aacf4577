// File: job.go
// Role: Single/Multi job types and the Job union, including Multi's lazy
// permitted-permutation iterator (§9: "must not be expanded eagerly").
package core

import "iter"

// Job is implemented by *Single and *Multi. It is intentionally a closed,
// two-member union (Go has no sum types); switch on concrete type where the
// distinction matters (insertion, most features treat both uniformly via
// AllSingles/JobID).
type Job interface {
	// JobID returns the job's identifier, read from Dimens()[DimenID] for a
	// Single, or the Multi's own ID for a Multi.
	JobID() string
	// AllSingles returns every Single part that makes up this job: itself for a
	// Single, all parts for a Multi.
	AllSingles() []*Single
}

// Single is one atomic visit: a set of alternative Places (pick one) plus an
// open Dimens map carrying id/demand/skills/order/group/... (§3).
type Single struct {
	Places []Place
	Dimens Dimens
}

// JobID implements Job.
func (s *Single) JobID() string {
	if id, ok := s.Dimens.GetString(DimenID); ok {
		return id
	}

	return ""
}

// AllSingles implements Job.
func (s *Single) AllSingles() []*Single { return []*Single{s} }

// Multi is an ordered collection of Single parts that must all be served, in
// the tour, in an order matching one of Permutations's sequences. A Multi with
// a single Permutations sequence equal to the identity behaves like a strict
// pickup-then-delivery pair.
type Multi struct {
	ID    string
	Parts []*Single
	// Permutations enumerates every permitted ordering of indices into Parts as
	// a lazy sequence, so a Multi with many parts never forces the insertion
	// heuristic to materialize every permutation up front.
	Permutations func() iter.Seq[[]int]
}

// JobID implements Job.
func (m *Multi) JobID() string { return m.ID }

// AllSingles implements Job.
func (m *Multi) AllSingles() []*Single { return m.Parts }

// SequentialPermutation returns an iter.Seq yielding exactly one permutation:
// parts in the order they appear in m.Parts. It is the common case (strict
// pickup-then-delivery, or any fixed-order multi-job).
func SequentialPermutation(n int) func() iter.Seq[[]int] {
	return func() iter.Seq[[]int] {
		return func(yield func([]int) bool) {
			seq := make([]int, n)
			for i := range seq {
				seq[i] = i
			}
			yield(seq)
		}
	}
}

// AllPermutations returns an iter.Seq over every permutation of [0..n). Use
// only for small n (Heap's algorithm is O(n!)); most real jobs restrict the
// permitted set far below the factorial count via a custom Permutations func.
func AllPermutations(n int) func() iter.Seq[[]int] {
	return func() iter.Seq[[]int] {
		return func(yield func([]int) bool) {
			perm := make([]int, n)
			for i := range perm {
				perm[i] = i
			}
			c := make([]int, n)
			out := make([]int, n)
			copy(out, perm)
			if !yield(out) {
				return
			}
			i := 0
			for i < n {
				if c[i] < i {
					if i%2 == 0 {
						perm[0], perm[i] = perm[i], perm[0]
					} else {
						perm[c[i]], perm[i] = perm[i], perm[c[i]]
					}
					out = make([]int, n)
					copy(out, perm)
					if !yield(out) {
						return
					}
					c[i]++
					i = 0
				} else {
					c[i] = 0
					i++
				}
			}
		}
	}
}
