// File: remove.go
// Role: Shared machinery every operator builds on: mapping an Activity's
// *core.Single back to the owning Job (a Multi's parts don't carry the
// parent's ID, per core/job.go), removing a Job's activities from wherever
// they sit, and the post-ruin cleanup pass (stale-state recompute, empty-route
// pruning, solution-state recompute).
package ruin

import (
	"github.com/hashicorp/go-set/v3"

	"github.com/katalvlaran/vrpcore/core"
)

// singleIndex maps every *core.Single part back to its owning Job, so an
// Activity (which only carries a *core.Single) can be resolved to the Job a
// recreator would reinsert.
func singleIndex(problem *core.Problem) map[*core.Single]core.Job {
	idx := make(map[*core.Single]core.Job)
	for _, j := range problem.Jobs {
		for _, s := range j.AllSingles() {
			idx[s] = j
		}
	}

	return idx
}

// primaryLocation returns a job's first alternative Place's Location, the
// representative point spatial operators (cluster, neighbour) compare.
func primaryLocation(job core.Job) (core.Location, bool) {
	singles := job.AllSingles()
	if len(singles) == 0 || len(singles[0].Places) == 0 {
		return 0, false
	}

	return singles[0].Places[0].Location, true
}

// removableJobs returns every distinct Job currently placed on a route and
// not locked, deduplicated across a Multi's several parts.
func removableJobs(ic *core.InsertionContext) []core.Job {
	idx := singleIndex(ic.Problem)
	seen := make(map[string]bool)
	var out []core.Job
	for _, rc := range ic.Solution.Routes {
		out = append(out, jobsOnRoute(rc, idx, ic.Solution.Locked, seen)...)
	}

	return out
}

// jobsOnRoute returns the distinct, unlocked Jobs placed on rc, in tour order.
// seen, if non-nil, is shared across calls to dedupe across routes (a Multi's
// parts never span routes in this engine, but sharing the set costs nothing).
func jobsOnRoute(rc *core.RouteContext, idx map[*core.Single]core.Job, locked *set.Set[string], seen map[string]bool) []core.Job {
	if seen == nil {
		seen = make(map[string]bool)
	}
	var out []core.Job
	for _, act := range rc.Route.Tour.Activities {
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

// routeContaining returns the RouteContext carrying any part of job, or nil.
func routeContaining(ic *core.InsertionContext, job core.Job) *core.RouteContext {
	parts := make(map[*core.Single]bool, len(job.AllSingles()))
	for _, s := range job.AllSingles() {
		parts[s] = true
	}
	for _, rc := range ic.Solution.Routes {
		for _, act := range rc.Route.Tour.Activities {
			if act.Job != nil && parts[act.Job] {
				return rc
			}
		}
	}

	return nil
}

// removeJob pulls every activity belonging to job off whichever route(s) carry
// it, marks the touched route(s) stale, and returns job to Required (a no-op
// if it's already there) clearing any stale Unassigned entry.
func removeJob(ic *core.InsertionContext, job core.Job) {
	parts := make(map[*core.Single]bool, len(job.AllSingles()))
	for _, s := range job.AllSingles() {
		parts[s] = true
	}
	for _, rc := range ic.Solution.Routes {
		tour := rc.Route.Tour
		removedAny := false
		for i := len(tour.Activities) - 1; i >= 0; i-- {
			if act := tour.Activities[i]; act.Job != nil && parts[act.Job] {
				tour.RemoveAt(i)
				removedAny = true
			}
		}
		if removedAny {
			rc.State.MarkStale()
		}
	}

	for _, j := range ic.Solution.Required {
		if j.JobID() == job.JobID() {
			delete(ic.Solution.Unassigned, job.JobID())

			return
		}
	}
	ic.Solution.Required = append(ic.Solution.Required, job)
	delete(ic.Solution.Unassigned, job.JobID())
}

// pruneEmptyRoutes drops every route left with no job activities, freeing its
// actor back to the registry (§3 invariant 6: an actor runs at most one route).
func pruneEmptyRoutes(ic *core.InsertionContext) {
	kept := ic.Solution.Routes[:0]
	for _, rc := range ic.Solution.Routes {
		if rc.Route.IsEmpty() {
			ic.Solution.Registry.MarkFree(rc.Route.Actor)

			continue
		}
		kept = append(kept, rc)
	}
	ic.Solution.Routes = kept
}

// finalize recomputes every stale route's feature state, prunes routes left
// empty, and recomputes solution-wide state. Every operator calls this once,
// at the end of its Ruin.
func finalize(ic *core.InsertionContext) {
	for _, rc := range ic.Solution.StaleRoutes() {
		ic.Problem.Goal.AcceptRouteState(rc)
	}
	pruneEmptyRoutes(ic)
	ic.Problem.Goal.AcceptSolutionState(ic.Solution)
}
