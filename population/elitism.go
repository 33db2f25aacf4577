// File: elitism.go
// Role: Elitism population (§4.9): the Pareto front of size <= N under the
// goal's TotalOrder.
package population

import (
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/vrpcore/core"
)

// Elitism keeps a bounded Pareto front.
type Elitism struct {
	goal    core.GoalContext
	maxSize int
	front   []*core.InsertionContext
	logger  hclog.Logger
}

// NewElitism returns an empty Elitism bounded to maxSize members.
func NewElitism(goal core.GoalContext, maxSize int) *Elitism {
	if maxSize < 1 {
		maxSize = 1
	}

	return &Elitism{goal: goal, maxSize: maxSize, logger: hclog.NewNullLogger()}
}

// WithLogger attaches a diagnostics logger (§1.1), replacing the default null
// logger. Returns e for chaining.
func (e *Elitism) WithLogger(logger hclog.Logger) *Elitism {
	if logger != nil {
		e.logger = logger
	}

	return e
}

// Add implements Population. ic is rejected if any front member dominates
// it; otherwise it joins and every front member ic dominates is dropped.
func (e *Elitism) Add(ic *core.InsertionContext) bool {
	for _, existing := range e.front {
		if e.goal.TotalOrder(ic, existing) > 0 {
			return false
		}
	}

	kept := make([]*core.InsertionContext, 0, len(e.front)+1)
	for _, existing := range e.front {
		if e.goal.TotalOrder(ic, existing) < 0 {
			continue
		}
		kept = append(kept, existing)
	}
	kept = append(kept, ic)
	e.front = kept
	e.trim()
	e.logger.Debug("elitism: front updated", "size", len(e.front))

	return true
}

// trim bounds the front to maxSize by keeping the best-ranked members; a
// Pareto front has no single ranking by definition, so this orders by
// TotalOrder as a tiebreak-only bound, not a claim that the dropped members
// are truly "worse" in every objective.
func (e *Elitism) trim() {
	if len(e.front) <= e.maxSize {
		return
	}
	sort.Slice(e.front, func(i, j int) bool { return e.goal.TotalOrder(e.front[i], e.front[j]) < 0 })
	e.front = e.front[:e.maxSize]
}

// Select implements Population: samples up to m parents, weighted toward
// the front's head (rank r gets weight 1/(r+1)).
func (e *Elitism) Select(m int, env *core.Environment) []*core.InsertionContext {
	if len(e.front) == 0 || m <= 0 {
		return nil
	}
	sorted := append([]*core.InsertionContext(nil), e.front...)
	sort.Slice(sorted, func(i, j int) bool { return e.goal.TotalOrder(sorted[i], sorted[j]) < 0 })
	if m >= len(sorted) {
		return sorted
	}

	chosen := make([]bool, len(sorted))
	out := make([]*core.InsertionContext, 0, m)
	for len(out) < m {
		var total float64
		weights := make([]float64, len(sorted))
		for i := range sorted {
			if chosen[i] {
				continue
			}
			weights[i] = 1.0 / float64(i+1)
			total += weights[i]
		}
		if total <= 0 {
			break
		}
		roll := env.Random.Float64() * total
		for i, w := range weights {
			if chosen[i] {
				continue
			}
			roll -= w
			if roll <= 0 {
				chosen[i] = true
				out = append(out, sorted[i])

				break
			}
		}
	}

	return out
}

// Best implements Population.
func (e *Elitism) Best() *core.InsertionContext {
	if len(e.front) == 0 {
		return nil
	}
	best := e.front[0]
	for _, ic := range e.front[1:] {
		if e.goal.TotalOrder(ic, best) < 0 {
			best = ic
		}
	}

	return best
}

// Len returns the current front size.
func (e *Elitism) Len() int { return len(e.front) }
