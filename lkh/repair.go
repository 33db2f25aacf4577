// File: repair.go
// Role: Post-reorder repair (§4.10 "jobs whose positions became infeasible
// are extracted and re-inserted"): re-validate every activity in its new
// position and pull out whatever no longer fits.
package lkh

import "github.com/katalvlaran/vrpcore/core"

// singleIndex maps every *core.Single part back to its owning Job (a Multi's
// parts don't carry the parent ID, per core/job.go).
func singleIndex(problem *core.Problem) map[*core.Single]core.Job {
	idx := make(map[*core.Single]core.Job)
	for _, j := range problem.Jobs {
		for _, s := range j.AllSingles() {
			idx[s] = j
		}
	}

	return idx
}

// repairRoute recomputes rc's state, then re-evaluates every job activity in
// place; any activity a registered constraint now rejects is extracted from
// the route and returned to the caller for requeueing into Required.
func repairRoute(ic *core.InsertionContext, rc *core.RouteContext, idx map[*core.Single]core.Job) []core.Job {
	ic.Problem.Goal.AcceptRouteState(rc)

	acts := rc.Route.Tour.Activities
	seen := make(map[string]bool)
	var infeasible []core.Job
	for i, act := range acts {
		if act.Job == nil {
			continue
		}
		job, ok := idx[act.Job]
		if !ok || seen[job.JobID()] {
			continue
		}

		var prev, next *core.Activity
		if i > 0 {
			prev = &acts[i-1]
		}
		if i+1 < len(acts) {
			next = &acts[i+1]
		}
		mc := core.MoveContext{Activity: &core.ActivityMoveContext{
			Route: rc, Index: i, Prev: prev, Target: &acts[i], Next: next,
		}}
		if violation := ic.Problem.Goal.Evaluate(mc); violation != nil {
			seen[job.JobID()] = true
			infeasible = append(infeasible, job)
		}
	}

	for _, job := range infeasible {
		extractFromRoute(rc, job)
	}
	if len(infeasible) > 0 {
		rc.State.MarkStale()
		ic.Problem.Goal.AcceptRouteState(rc)
	}

	return infeasible
}

// extractFromRoute removes every activity belonging to job from rc.
func extractFromRoute(rc *core.RouteContext, job core.Job) {
	parts := make(map[*core.Single]bool, len(job.AllSingles()))
	for _, s := range job.AllSingles() {
		parts[s] = true
	}
	tour := rc.Route.Tour
	for i := len(tour.Activities) - 1; i >= 0; i-- {
		if act := tour.Activities[i]; act.Job != nil && parts[act.Job] {
			tour.RemoveAt(i)
		}
	}
}

// requeue returns job to ic.Solution.Required (a no-op if already there),
// clearing any stale Unassigned entry.
func requeue(ic *core.InsertionContext, job core.Job) {
	for _, j := range ic.Solution.Required {
		if j.JobID() == job.JobID() {
			delete(ic.Solution.Unassigned, job.JobID())

			return
		}
	}
	ic.Solution.Required = append(ic.Solution.Required, job)
	delete(ic.Solution.Unassigned, job.JobID())
}
