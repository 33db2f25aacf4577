// File: context.go
// Role: Problem (immutable, shared) and SolutionContext/InsertionContext (the
// mutable working solution), per spec.md §3.
package core

import (
	"math/rand"

	"github.com/hashicorp/go-set/v3"
	"github.com/mitchellh/copystructure"
)

// TransportCost is the minimal transport contract core.Problem depends on;
// package transport's Matrix/TimeAwareMatrix implement it. Declared here (not
// imported from package transport) to avoid a core↔transport import cycle.
type TransportCost interface {
	Distance(profile Profile, from, to Location, departure float64) float64
	Duration(profile Profile, from, to Location, departure float64) float64
	DistanceApprox(profile Profile, from, to Location) float64
}

// ActivityCost computes the cost contribution of one activity beyond pure
// travel (waiting, service time, fixed vehicle cost at the first activity).
type ActivityCost interface {
	Cost(actor *Actor, activity Activity, arrival float64) float64
}

// DefaultActivityCost derives cost from the Actor's VehicleCosts: waiting time
// (arrival to activity start) times PerWaitingTime, plus service duration
// times PerServiceTime.
type DefaultActivityCost struct{}

// Cost implements ActivityCost.
func (DefaultActivityCost) Cost(actor *Actor, activity Activity, arrival float64) float64 {
	costs := actor.Vehicle.Costs
	start := arrival
	if len(activity.Place.Times) > 0 {
		windows := activity.Place.ResolvedWindows(actor.Shift.StartTimes.Resolve(0).Start)
		if len(windows) > 0 && windows[0].Start > start {
			start = windows[0].Start
		}
	}
	waiting := start - arrival
	if waiting < 0 {
		waiting = 0
	}

	return waiting*costs.PerWaitingTime + activity.Place.Duration*costs.PerServiceTime
}

// Lock pins a set of jobs to one vehicle's route, optionally in strict order
// (§4.4 Locking feature, scenario G).
type Lock struct {
	VehicleID string
	JobIDs    []string
	Strict    bool
}

// Problem is the immutable bundle every InsertionContext references. It is
// constructed once by a loader (out of scope) and shared by pointer across
// every concurrent solution copy the metaheuristic explores.
type Problem struct {
	Fleet         []*Vehicle
	Jobs          []Job
	Goal          GoalContext
	ActivityCost  ActivityCost
	TransportCost TransportCost
	Locks         []Lock
	Extras        map[string]interface{}
}

// JobByID returns the Job with the given ID, or nil if none matches.
func (p *Problem) JobByID(id string) Job {
	for _, j := range p.Jobs {
		if j.JobID() == id {
			return j
		}
	}

	return nil
}

// UnassignedReason explains why a job could not be placed: either a Simple
// feature-reported code, or Unknown (no feature ever attempted it, e.g. an
// initial solution never mentioned the job).
type UnassignedReason struct {
	Code        int
	Description string
}

// UnknownReason is returned for jobs no recreator ever attempted.
var UnknownReason = UnassignedReason{Code: 0, Description: "unknown"}

// SolutionContext is the mutable working solution: which jobs are placed,
// ignored, or unassigned, and the routes carrying the placed ones.
type SolutionContext struct {
	Required   []Job
	Ignored    []Job
	Unassigned map[string]UnassignedReason
	Locked     *set.Set[string]
	Routes     []*RouteContext
	Registry   *ActorRegistry
	State      *StateStore
}

// NewSolutionContext builds an empty working solution over problem: every job
// starts in Required, no routes are open yet.
func NewSolutionContext(problem *Problem) *SolutionContext {
	required := make([]Job, len(problem.Jobs))
	copy(required, problem.Jobs)

	sc := &SolutionContext{
		Required:   required,
		Unassigned: make(map[string]UnassignedReason),
		Locked:     set.New[string](0),
		Registry:   NewActorRegistry(problem.Fleet),
		State:      NewStateStore(),
	}
	for _, lock := range problem.Locks {
		for _, jobID := range lock.JobIDs {
			sc.Locked.Insert(jobID)
		}
	}

	return sc
}

// RouteFor returns the RouteContext whose Actor matches actor, or nil.
func (sc *SolutionContext) RouteFor(actor *Actor) *RouteContext {
	for _, rc := range sc.Routes {
		if rc.Route.Actor == actor {
			return rc
		}
	}

	return nil
}

// RemoveRequired removes job from Required by identity of JobID.
func (sc *SolutionContext) RemoveRequired(job Job) {
	id := job.JobID()
	for i, j := range sc.Required {
		if j.JobID() == id {
			sc.Required = append(sc.Required[:i], sc.Required[i+1:]...)

			return
		}
	}
}

// MarkUnassigned records job as unassigned with reason, removing it from
// Required if present.
func (sc *SolutionContext) MarkUnassigned(job Job, reason UnassignedReason) {
	sc.RemoveRequired(job)
	sc.Unassigned[job.JobID()] = reason
}

// MarkAssigned removes job from Required/Unassigned bookkeeping once it has
// been placed on a route.
func (sc *SolutionContext) MarkAssigned(job Job) {
	sc.RemoveRequired(job)
	delete(sc.Unassigned, job.JobID())
}

// StaleRoutes returns every RouteContext whose State.IsStale() is true.
func (sc *SolutionContext) StaleRoutes() []*RouteContext {
	out := make([]*RouteContext, 0, len(sc.Routes))
	for _, rc := range sc.Routes {
		if rc.State.IsStale() {
			out = append(out, rc)
		}
	}

	return out
}

// Clone returns a deep, independently-mutable copy of sc, using
// mitchellh/copystructure for the Unassigned map (deep value copy) and
// explicit per-field cloning for Routes/Registry/State, which hold behavior
// (funcs, *Single pointers into the shared Problem) copystructure cannot
// safely deep-copy.
func (sc *SolutionContext) Clone() *SolutionContext {
	clone := &SolutionContext{
		Required: append([]Job(nil), sc.Required...),
		Ignored:  append([]Job(nil), sc.Ignored...),
		Locked:   sc.Locked.Copy(),
		Registry: sc.Registry.Clone(),
		State:    sc.State.Clone(),
	}
	if unassignedCopy, err := copystructure.Copy(sc.Unassigned); err == nil {
		clone.Unassigned = unassignedCopy.(map[string]UnassignedReason)
	} else {
		clone.Unassigned = make(map[string]UnassignedReason, len(sc.Unassigned))
		for k, v := range sc.Unassigned {
			clone.Unassigned[k] = v
		}
	}
	clone.Routes = make([]*RouteContext, len(sc.Routes))
	for i, rc := range sc.Routes {
		clone.Routes[i] = rc.Clone()
	}

	return clone
}

// Environment carries cross-cutting, explicitly-threaded dependencies: the
// PRNG (§9 "all randomness flows through an explicit PRNG passed by
// reference") and an optional structured logger.
type Environment struct {
	Random *rand.Rand
	Logger Logger
}

// Logger is the minimal logging surface vrpcore depends on; an hclog.Logger
// satisfies it (§SPEC_FULL.md §1.1). Kept minimal
// here to avoid core depending on hclog directly.
type Logger interface {
	Debug(msg string, args ...interface{})
}

// NoopLogger discards everything; the zero-value Environment is still usable.
type NoopLogger struct{}

// Debug implements Logger.
func (NoopLogger) Debug(string, ...interface{}) {}

// NewEnvironment returns an Environment with a fresh PRNG seeded from seed and
// a no-op logger.
func NewEnvironment(seed int64) *Environment {
	return &Environment{Random: rand.New(rand.NewSource(seed)), Logger: NoopLogger{}}
}

// InsertionContext is the mutable working solution plus the immutable problem
// reference; it is owned by exactly one worker at a time (§3 "Ownership").
type InsertionContext struct {
	Problem     *Problem
	Solution    *SolutionContext
	Environment *Environment
}

// NewInsertionContext builds a fresh InsertionContext with an empty solution.
func NewInsertionContext(problem *Problem, env *Environment) *InsertionContext {
	return &InsertionContext{Problem: problem, Solution: NewSolutionContext(problem), Environment: env}
}

// DeepCopy returns an independently-mutable InsertionContext sharing the same
// Problem pointer (immutable, never mutated) but an entirely separate
// Solution, safe to hand to a second worker goroutine.
func (ic *InsertionContext) DeepCopy() *InsertionContext {
	return &InsertionContext{
		Problem:     ic.Problem,
		Solution:    ic.Solution.Clone(),
		Environment: ic.Environment,
	}
}
