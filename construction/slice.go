// File: slice.go
// Role: Slice recreator (§4.6) — splits required jobs into clusters and
// recreates one cluster at a time with an inner strategy, so clusters don't
// compete against each other for the cheapest position every round.
package construction

import "github.com/katalvlaran/vrpcore/core"

type sliceRecreator struct {
	inner   Recreator
	cluster func(jobs []core.Job) [][]core.Job
}

// NewSlice returns a recreator that partitions the required jobs with
// clusterFunc and runs inner (e.g. NewCheapest()) once per cluster, in the
// order clusterFunc returns them.
func NewSlice(inner Recreator, clusterFunc func(jobs []core.Job) [][]core.Job) Recreator {
	return sliceRecreator{inner: inner, cluster: clusterFunc}
}

// Recreate implements Recreator.
func (s sliceRecreator) Recreate(ic *core.InsertionContext) {
	all := append([]core.Job(nil), ic.Solution.Required...)
	clusters := s.cluster(all)

	for _, cluster := range clusters {
		ids := make(map[string]bool, len(cluster))
		for _, j := range cluster {
			ids[j.JobID()] = true
		}

		held := ic.Solution.Required
		ic.Solution.Required = nil
		var rest []core.Job
		for _, j := range held {
			if ids[j.JobID()] {
				ic.Solution.Required = append(ic.Solution.Required, j)
			} else {
				rest = append(rest, j)
			}
		}

		s.inner.Recreate(ic)

		ic.Solution.Required = append(ic.Solution.Required, rest...)
	}
}

// ClusterByCount splits jobs into contiguous groups of at most size each, in
// slice order — a simple, deterministic clustering when no spatial notion is
// available to the recreator.
func ClusterByCount(size int) func(jobs []core.Job) [][]core.Job {
	if size < 1 {
		size = 1
	}

	return func(jobs []core.Job) [][]core.Job {
		var out [][]core.Job
		for i := 0; i < len(jobs); i += size {
			end := i + size
			if end > len(jobs) {
				end = len(jobs)
			}
			out = append(out, jobs[i:end])
		}

		return out
	}
}
