// File: adjacentstring.go
// Role: Adjacent-string ruin (§4.7): for one seed job, remove a contiguous
// run of activities in its route; repeat with fresh seeds, across routes,
// until the budget is spent.
package ruin

import (
	"github.com/hashicorp/go-set/v3"

	"github.com/katalvlaran/vrpcore/core"
)

type adjacentString struct {
	limit     Limit
	stringLen int
}

// NewAdjacentString removes contiguous runs of up to stringLen job-activities
// around successive random seeds, until limit jobs total have been removed.
func NewAdjacentString(limit Limit, stringLen int) Operator {
	if stringLen < 1 {
		stringLen = 1
	}

	return adjacentString{limit: limit, stringLen: stringLen}
}

// Ruin implements Operator.
func (o adjacentString) Ruin(ic *core.InsertionContext) {
	idx := singleIndex(ic.Problem)
	pool := removableJobs(ic)
	target := o.limit.Resolve(len(pool))
	if target == 0 {
		return
	}
	ic.Environment.Random.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	removed := 0
	taken := make(map[uint64]bool)
	for _, seed := range pool {
		if removed >= target {
			break
		}
		rc := routeContaining(ic, seed)
		if rc == nil {
			continue
		}
		seedKey := removalKey(rc.Route.Actor.Key(), seed.JobID())
		if taken[seedKey] {
			continue
		}
		for _, job := range stringAround(rc, idx, seed, o.stringLen, ic.Solution.Locked) {
			key := removalKey(rc.Route.Actor.Key(), job.JobID())
			if removed >= target || taken[key] {
				continue
			}
			taken[key] = true
			removeJob(ic, job)
			removed++
		}
	}
	finalize(ic)
}

// stringAround returns up to length consecutive job-activities on rc starting
// at seed's position, skipping locked jobs.
func stringAround(rc *core.RouteContext, idx map[*core.Single]core.Job, seed core.Job, length int, locked *set.Set[string]) []core.Job {
	jobIdx := rc.Route.Tour.JobActivityIndices()
	seedPos := -1
	for i, at := range jobIdx {
		act := rc.Route.Tour.Activities[at]
		if act.Job == nil {
			continue
		}
		if job, ok := idx[act.Job]; ok && job.JobID() == seed.JobID() {
			seedPos = i

			break
		}
	}
	if seedPos < 0 {
		return nil
	}

	end := seedPos + length
	if end > len(jobIdx) {
		end = len(jobIdx)
	}

	seen := make(map[string]bool)
	var out []core.Job
	for _, at := range jobIdx[seedPos:end] {
		act := rc.Route.Tour.Activities[at]
		if act.Job == nil {
			continue
		}
		job, ok := idx[act.Job]
		if !ok || seen[job.JobID()] || locked.Contains(job.JobID()) {
			continue
		}
		seen[job.JobID()] = true
		out = append(out, job)
	}

	return out
}
