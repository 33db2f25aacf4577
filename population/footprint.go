// File: footprint.go
// Role: §5 "Population on-change folds a batch of solutions into a Footprint
// (an accumulated adjacency-frequency matrix of bounded dimension, max
// 256x256) using parallel fold-reduce." Cells are addressed by hashing each
// activity-to-activity edge's locations with mitchellh/hashstructure rather
// than keeping a map keyed by the raw (possibly huge) location space.
package population

import (
	"github.com/mitchellh/hashstructure/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vrpcore/core"
)

// footprintDim bounds the adjacency-frequency matrix, per §5.
const footprintDim = 256

// Footprint accumulates how often each (from,to) edge bucket appears across a
// batch of solutions — a cheap diversity/novelty signal a caller can use to
// bias selection away from over-represented structure.
type Footprint struct {
	counts [footprintDim][footprintDim]uint64
}

// NewFootprint returns an empty Footprint.
func NewFootprint() *Footprint {
	return &Footprint{}
}

// Observe folds every route's consecutive-activity edges of ic into f.
func (f *Footprint) Observe(ic *core.InsertionContext) {
	for _, rc := range ic.Solution.Routes {
		acts := rc.Route.Tour.Activities
		for i := 1; i < len(acts); i++ {
			from := edgeBucket(acts[i-1].Place.Location)
			to := edgeBucket(acts[i].Place.Location)
			f.counts[from][to]++
		}
	}
}

// Count returns the accumulated frequency for the bucket pair the locations
// (from,to) hash into.
func (f *Footprint) Count(from, to core.Location) uint64 {
	return f.counts[edgeBucket(from)][edgeBucket(to)]
}

// edgeBucket hashes a location into [0, footprintDim). Collisions only ever
// merge two locations' frequencies, never lose an observation outright.
func edgeBucket(loc core.Location) int {
	h, err := hashstructure.Hash(loc, hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}

	return int(h % footprintDim)
}

// add merges other's counts into f (order-independent — plain componentwise
// addition).
func (f *Footprint) add(other *Footprint) {
	for i := range f.counts {
		for j := range f.counts[i] {
			f.counts[i][j] += other.counts[i][j]
		}
	}
}

// Fold computes a partial Footprint per solution concurrently into a
// pre-sized slice (each goroutine only writes its own index, so no shared-
// mutex append is needed, matching the split solver/accept.go uses for
// accept_solution_state), then reduces them sequentially — order-independent
// addition, per §5's "operators that fold across routes use order-independent
// reductions".
func (f *Footprint) Fold(solutions []*core.InsertionContext) {
	partials := make([]*Footprint, len(solutions))

	var group errgroup.Group
	for i, ic := range solutions {
		i, ic := i, ic
		group.Go(func() error {
			partial := NewFootprint()
			partial.Observe(ic)
			partials[i] = partial

			return nil
		})
	}
	_ = group.Wait()

	for _, partial := range partials {
		f.add(partial)
	}
}
