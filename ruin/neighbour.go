// File: neighbour.go
// Role: Neighbour ruin (§4.7): remove a seed plus its k nearest neighbours —
// adapted from the nearest-expansion idiom of a Dijkstra-style shortest-path
// search (rank remaining candidates by distance from the frontier, take the
// closest first), here ranking once from a single seed rather than relaxing a
// frontier repeatedly, since only proximity (not a shortest path) matters.
package ruin

import (
	"sort"

	"github.com/katalvlaran/vrpcore/core"
)

type neighbour struct {
	limit Limit
}

// NewNeighbour removes a random seed job plus its limit-1 nearest (by
// DistanceApprox) removable neighbours.
func NewNeighbour(limit Limit) Operator {
	return neighbour{limit: limit}
}

// Ruin implements Operator.
func (o neighbour) Ruin(ic *core.InsertionContext) {
	pool := removableJobs(ic)
	if len(pool) == 0 {
		return
	}
	target := o.limit.Resolve(len(pool))

	seed := pool[ic.Environment.Random.Intn(len(pool))]
	seedLoc, ok := primaryLocation(seed)
	if !ok {
		return
	}
	profile := core.Profile{}
	if len(ic.Problem.Fleet) > 0 {
		profile = ic.Problem.Fleet[0].Profile
	}

	type ranked struct {
		job  core.Job
		dist float64
	}
	others := make([]ranked, 0, len(pool))
	for _, cand := range pool {
		if cand.JobID() == seed.JobID() {
			continue
		}
		loc, ok := primaryLocation(cand)
		if !ok {
			continue
		}
		others = append(others, ranked{job: cand, dist: ic.Problem.TransportCost.DistanceApprox(profile, seedLoc, loc)})
	}
	sort.Slice(others, func(i, j int) bool { return others[i].dist < others[j].dist })

	removeJob(ic, seed)
	removed := 1
	for _, r := range others {
		if removed >= target {
			break
		}
		removeJob(ic, r.job)
		removed++
	}
	finalize(ic)
}
