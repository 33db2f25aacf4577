// File: loop.go
// Role: The metaheuristic loop of §4.8: select a parent, mutate, score,
// offer to the population, report telemetry, consult termination. Repeats
// until cancelled or Config.Termination fires.
package solver

import (
	"math"
	"time"

	"github.com/katalvlaran/vrpcore/core"
)

// Loop drives the generation cycle over one Problem.
type Loop struct {
	Problem   *core.Problem
	Selector  Selector
	Diversify Mutation // applied once Config.StallAfter generations pass with no population improvement; nil disables the override
	Config    *Config
}

// NewLoop builds a Loop. diversify may be nil (no stall override).
func NewLoop(problem *core.Problem, selector Selector, diversify Mutation, config *Config) *Loop {
	if config == nil {
		config = NewConfig()
	}

	return &Loop{Problem: problem, Selector: selector, Diversify: diversify, Config: config}
}

// Run seeds the population with initial (may be empty — an empty solution is
// used as the sole seed), then iterates generations until cancellation or
// termination, returning the best solution found.
func (l *Loop) Run(initial []*core.InsertionContext, env *core.Environment) *core.InsertionContext {
	if len(initial) == 0 {
		seed := core.NewInsertionContext(l.Problem, env)
		acceptSolutionState(seed)
		initial = []*core.InsertionContext{seed}
	}
	for _, ic := range initial {
		l.Config.Population.Add(ic)
	}

	start := time.Now()
	var trailing []float64
	stall := 0

	for generation := 0; ; generation++ {
		if l.Config.Cancel.Cancelled() {
			l.Config.Telemetry.Report(GenerationEvent{Generation: generation, Cancelled: true})

			break
		}
		elapsed := time.Since(start)
		if l.Config.Termination.ShouldStop(generation, elapsed, trailing) {
			break
		}

		mutation := l.Selector.Select(generation, env)
		if l.Diversify != nil && stall >= l.Config.StallAfter {
			mutation = l.Diversify
		}

		parents := l.Config.Population.Select(1, env)
		if len(parents) == 0 {
			parents = []*core.InsertionContext{l.Config.Population.Best()}
		}
		parent := parents[0]

		candidate := parent.DeepCopy()
		mutationStart := time.Now()
		mutation.Mutate(candidate)
		mutationElapsed := time.Since(mutationStart)
		acceptSolutionState(candidate)

		improved := l.Config.Population.Add(candidate)
		if improved {
			stall = 0
		} else {
			stall++
		}

		l.Selector.Reward(mutation.Name(), stateOf(parent), stateOf(candidate), reward(l.Problem, parent, candidate, mutationElapsed))

		best := l.Config.Population.Best()
		fitness := l.Problem.Goal.Fitness(best)
		var primary float64
		if len(fitness) > 0 {
			primary = fitness[0]
		}
		trailing = append(trailing, primary)

		var ratio float64
		if n := len(trailing); n >= 2 && trailing[n-2] != 0 {
			ratio = (trailing[n-2] - primary) / math.Abs(trailing[n-2])
		}
		l.Config.Telemetry.Report(GenerationEvent{
			Generation: generation, Elapsed: elapsed, BestFitness: fitness,
			ImprovementRatio: ratio, SelectedOperator: mutation.Name(),
		})
	}

	return l.Config.Population.Best()
}

// stateOf buckets ic into a coarse SolutionState for bandit attribution.
func stateOf(ic *core.InsertionContext) SolutionState {
	return SolutionState{RouteCount: len(ic.Solution.Routes), UnassignedCount: len(ic.Solution.Unassigned)}
}

// reward is the fitness improvement (parent minus candidate, assuming a
// minimizing primary objective) normalized by the time the mutation took,
// per §4.8 "reward (improvement over baseline, normalized by time)".
func reward(problem *core.Problem, parent, candidate *core.InsertionContext, elapsed time.Duration) float64 {
	parentFitness := problem.Goal.Fitness(parent)
	candidateFitness := problem.Goal.Fitness(candidate)
	if len(parentFitness) == 0 || len(candidateFitness) == 0 {
		return 0
	}

	improvement := parentFitness[0] - candidateFitness[0]
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		seconds = 1e-6
	}

	return improvement / seconds
}
