// File: worst.go
// Role: Worst ruin (§4.7): remove the jobs whose removal most reduces route
// cost — the most expensive detours first.
package ruin

import (
	"sort"

	"github.com/katalvlaran/vrpcore/core"
)

type worst struct {
	limit Limit
}

// NewWorst removes the limit jobs with the largest detour cost: for a job at
// position i between prev and next, detour = dist(prev,job) + dist(job,next)
// − dist(prev,next).
func NewWorst(limit Limit) Operator {
	return worst{limit: limit}
}

type scoredJob struct {
	job  core.Job
	gain float64
}

// Ruin implements Operator.
func (o worst) Ruin(ic *core.InsertionContext) {
	idx := singleIndex(ic.Problem)
	var scored []scoredJob
	for _, rc := range ic.Solution.Routes {
		activities := rc.Route.Tour.Activities
		profile := rc.Route.Actor.Vehicle.Profile
		for i := 1; i < len(activities)-1; i++ {
			act := activities[i]
			if act.Job == nil {
				continue
			}
			job, ok := idx[act.Job]
			if !ok || ic.Solution.Locked.Contains(job.JobID()) {
				continue
			}
			prev, next := activities[i-1], activities[i+1]
			direct := ic.Problem.TransportCost.DistanceApprox(profile, prev.Place.Location, next.Place.Location)
			detour := ic.Problem.TransportCost.DistanceApprox(profile, prev.Place.Location, act.Place.Location) +
				ic.Problem.TransportCost.DistanceApprox(profile, act.Place.Location, next.Place.Location)
			scored = append(scored, scoredJob{job: job, gain: detour - direct})
		}
	}
	if len(scored) == 0 {
		return
	}
	sort.Slice(scored, func(i, j int) bool { return scored[i].gain > scored[j].gain })

	target := o.limit.Resolve(len(scored))
	seen := make(map[string]bool)
	removed := 0
	for _, s := range scored {
		if removed >= target {
			break
		}
		if seen[s.job.JobID()] {
			continue
		}
		seen[s.job.JobID()] = true
		removeJob(ic, s.job)
		removed++
	}
	finalize(ic)
}
