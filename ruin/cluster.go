// File: cluster.go
// Role: Cluster ruin (§4.7): a DBSCAN-like spatial neighborhood around a
// random seed, grown by breadth-first expansion — adapted from the
// connected-components BFS idiom (queue + visited set, expand while the edge
// predicate holds) used throughout the graph-algorithms side of this module's
// ancestry, here with "edge" redefined as "within radius" instead of
// "adjacent in a graph".
package ruin

import "github.com/katalvlaran/vrpcore/core"

type cluster struct {
	limit  Limit
	radius float64
}

// NewCluster removes a spatial cluster around a random seed: breadth-first
// expansion to any unvisited removable job within radius (DistanceApprox) of
// an already-visited member, stopping once limit jobs are collected.
func NewCluster(limit Limit, radius float64) Operator {
	return cluster{limit: limit, radius: radius}
}

// Ruin implements Operator.
func (o cluster) Ruin(ic *core.InsertionContext) {
	pool := removableJobs(ic)
	if len(pool) == 0 {
		return
	}
	target := o.limit.Resolve(len(pool))

	seed := pool[ic.Environment.Random.Intn(len(pool))]
	if _, ok := primaryLocation(seed); !ok {
		return
	}
	profile := o.profile(ic)

	visited := map[string]bool{seed.JobID(): true}
	queue := []core.Job{seed}
	collected := []core.Job{seed}

	for len(queue) > 0 && len(collected) < target {
		cur := queue[0]
		queue = queue[1:]
		curLoc, ok := primaryLocation(cur)
		if !ok {
			continue
		}
		for _, cand := range pool {
			if len(collected) >= target {
				break
			}
			if visited[cand.JobID()] {
				continue
			}
			candLoc, ok := primaryLocation(cand)
			if !ok {
				continue
			}
			if ic.Problem.TransportCost.DistanceApprox(profile, curLoc, candLoc) <= o.radius {
				visited[cand.JobID()] = true
				queue = append(queue, cand)
				collected = append(collected, cand)
			}
		}
	}

	for _, job := range collected {
		removeJob(ic, job)
	}
	finalize(ic)
}

// profile picks a representative Profile for spatial distance comparisons: the
// first fleet vehicle's, since cluster ruin compares relative proximity, not
// exact travel cost, and every profile shares the same underlying locations.
func (o cluster) profile(ic *core.InsertionContext) core.Profile {
	if len(ic.Problem.Fleet) == 0 {
		return core.Profile{}
	}

	return ic.Problem.Fleet[0].Profile
}
