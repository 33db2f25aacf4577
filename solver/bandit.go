// File: bandit.go
// Role: Adaptive heuristic selection (§4.8): a bandit over operators tracks a
// reward (improvement over baseline, normalized by time) per
// (operator, from-state, to-state) transition; selection is ε-greedy over
// each operator's average reward across all transitions, with a
// progress-aware exploration schedule.
package solver

import (
	"math/rand"
)

// SolutionState is a coarse bucket describing a solution's shape, cheap
// enough to compute every generation — the "state" half of the bandit's
// (operator, from-state, to-state) key. Two solutions in the same bucket are
// treated as interchangeable contexts for reward attribution.
type SolutionState struct {
	RouteCount      int
	UnassignedCount int
}

type banditKey struct {
	operator string
	from     SolutionState
	to       SolutionState
}

type banditStat struct {
	sum   float64
	count int
}

func (s banditStat) average() float64 {
	if s.count == 0 {
		return 0
	}

	return s.sum / float64(s.count)
}

// Bandit implements ε-greedy operator selection over a learned reward table.
// Exploration decays from InitialEpsilon to MinEpsilon as generations
// progress, per §4.8's "progress-aware exploration schedule."
type Bandit struct {
	operators     []string
	table         map[banditKey]banditStat
	perOperator   map[string]banditStat // marginalized over (from,to), used to rank operators irrespective of the current state
	InitialEpsilon float64
	MinEpsilon     float64
	DecayGens      int
}

// NewBandit returns a Bandit over operators with the given exploration
// schedule. decayGens is the generation count over which epsilon linearly
// decays from initialEpsilon to minEpsilon.
func NewBandit(operators []string, initialEpsilon, minEpsilon float64, decayGens int) *Bandit {
	return &Bandit{
		operators:      append([]string(nil), operators...),
		table:          make(map[banditKey]banditStat),
		perOperator:    make(map[string]banditStat),
		InitialEpsilon: initialEpsilon,
		MinEpsilon:     minEpsilon,
		DecayGens:      decayGens,
	}
}

// epsilon returns the current exploration probability for generation gen.
func (b *Bandit) epsilon(gen int) float64 {
	if b.DecayGens <= 0 || gen >= b.DecayGens {
		return b.MinEpsilon
	}
	frac := float64(gen) / float64(b.DecayGens)

	return b.InitialEpsilon - frac*(b.InitialEpsilon-b.MinEpsilon)
}

// Select picks an operator name: with probability epsilon(gen) a uniformly
// random operator (exploration), otherwise the operator with the highest
// marginal average reward seen so far (exploitation, ties broken by
// registration order).
func (b *Bandit) Select(gen int, rng *rand.Rand) string {
	if len(b.operators) == 0 {
		return ""
	}
	if rng.Float64() < b.epsilon(gen) {
		return b.operators[rng.Intn(len(b.operators))]
	}

	best := b.operators[0]
	bestAvg := b.perOperator[best].average()
	for _, op := range b.operators[1:] {
		if avg := b.perOperator[op].average(); avg > bestAvg {
			best, bestAvg = op, avg
		}
	}

	return best
}

// Reward records the outcome of applying operator to a solution that moved
// from "from" to "to", with reward typically the fitness improvement
// normalized by the time the mutation took.
func (b *Bandit) Reward(operator string, from, to SolutionState, reward float64) {
	key := banditKey{operator: operator, from: from, to: to}
	stat := b.table[key]
	stat.sum += reward
	stat.count++
	b.table[key] = stat

	marginal := b.perOperator[operator]
	marginal.sum += reward
	marginal.count++
	b.perOperator[operator] = marginal
}
