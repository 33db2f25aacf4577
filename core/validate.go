// File: validate.go
// Role: Problem-shape validation, reported as an aggregated InputError list
// (§7 "reported as a list so the loader can surface multiple issues at once").
package core

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ValidateProblem checks the structural invariants a loader-produced Problem
// must satisfy before the solver may run, returning every violation found
// (not just the first) via go-multierror. Returns nil when problem is valid.
func ValidateProblem(problem *Problem) error {
	var result *multierror.Error

	if problem == nil {
		return fmt.Errorf("core: nil problem")
	}
	if len(problem.Fleet) == 0 {
		result = multierror.Append(result, fmt.Errorf("core: fleet is empty"))
	}
	if problem.Goal == nil {
		result = multierror.Append(result, fmt.Errorf("core: goal is nil"))
	}
	if problem.TransportCost == nil {
		result = multierror.Append(result, fmt.Errorf("core: transport cost is nil"))
	}

	seenJobIDs := make(map[string]bool)
	for _, j := range problem.Jobs {
		id := j.JobID()
		if id == "" {
			result = multierror.Append(result, fmt.Errorf("core: job with empty id"))

			continue
		}
		if seenJobIDs[id] {
			result = multierror.Append(result, fmt.Errorf("core: duplicate job id %q", id))
		}
		seenJobIDs[id] = true

		for _, single := range j.AllSingles() {
			if len(single.Places) == 0 {
				result = multierror.Append(result, fmt.Errorf("core: job %q has a part with no places", id))
			}
		}
	}

	for _, v := range problem.Fleet {
		if v.VehicleID() == "" {
			result = multierror.Append(result, fmt.Errorf("core: vehicle with empty id"))
		}
		if len(v.Details) == 0 {
			result = multierror.Append(result, fmt.Errorf("core: vehicle %q has no shift details", v.VehicleID()))
		}
	}

	for _, lock := range problem.Locks {
		found := false
		for _, v := range problem.Fleet {
			if v.VehicleID() == lock.VehicleID {
				found = true

				break
			}
		}
		if !found {
			result = multierror.Append(result, fmt.Errorf("core: lock references unknown vehicle %q", lock.VehicleID))
		}
		for _, jobID := range lock.JobIDs {
			if !seenJobIDs[jobID] {
				result = multierror.Append(result, fmt.Errorf("core: lock references unknown job %q", jobID))
			}
		}
	}

	if result != nil {
		return result
	}

	return nil
}

// CheckInvariants recomputes spec.md §3 invariants 1-5 against a finished
// SolutionContext, returning every violation found. This is the Testable
// Properties §8 #1/#2/#3/#4/#5 checker used by unit tests; a full checker
// module (validating against the original wire format) is out of scope
// per spec.md §1.
func CheckInvariants(problem *Problem, sc *SolutionContext) error {
	var result *multierror.Error

	seen := make(map[string]int) // jobID -> occurrences across required/ignored/unassigned/routes
	for _, j := range sc.Required {
		seen[j.JobID()]++
	}
	for _, j := range sc.Ignored {
		seen[j.JobID()]++
	}
	for id := range sc.Unassigned {
		seen[id]++
	}
	for _, rc := range sc.Routes {
		for _, a := range rc.Route.Tour.Activities {
			if a.Job != nil {
				if id, ok := a.Job.Dimens.GetString(DimenID); ok {
					seen[id]++
				}
			}
		}
	}
	for _, j := range problem.Jobs {
		if seen[j.JobID()] != 1 {
			// Multi jobs contribute one occurrence per Single part when placed on
			// a route but exactly one occurrence when required/ignored/unassigned;
			// callers validating a Multi-heavy problem should count parts, so this
			// generic checker only asserts "at least once" for Multi jobs.
			if _, isMulti := j.(*Multi); isMulti {
				if seen[j.JobID()] == 0 {
					result = multierror.Append(result, fmt.Errorf("core: job %q missing from solution", j.JobID()))
				}

				continue
			}
			result = multierror.Append(result, fmt.Errorf("core: job %q conservation violated (seen %d times)", j.JobID(), seen[j.JobID()]))
		}
	}

	for _, rc := range sc.Routes {
		acts := rc.Route.Tour.Activities
		for i := 0; i < len(acts)-1; i++ {
			if acts[i].Schedule.Departure > acts[i+1].Schedule.Arrival+1e-6 {
				result = multierror.Append(result, fmt.Errorf(
					"core: route %s activity %d departs after activity %d arrives", rc.Route.Actor.Key(), i, i+1))
			}
		}
		for i, a := range acts {
			if a.Schedule.Departure+1e-6 < a.Schedule.Arrival+a.Place.Duration {
				result = multierror.Append(result, fmt.Errorf(
					"core: route %s activity %d departs before service completes", rc.Route.Actor.Key(), i))
			}
		}
	}

	if result != nil {
		return result
	}

	return nil
}
