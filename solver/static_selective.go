// File: static_selective.go
// Role: The StaticSelective variant of §4.8: fixed per-operator weights with a
// cold-phase/warm-phase schedule, as an alternative to the adaptive Bandit.
package solver

import "github.com/katalvlaran/vrpcore/core"

// Selector picks which Mutation to apply this generation and, for selectors
// that learn, records the outcome.
type Selector interface {
	Select(generation int, env *core.Environment) Mutation
	Reward(name string, from, to SolutionState, reward float64)
}

// AdaptiveSelector is the Bandit-backed Selector (§4.8's default).
type AdaptiveSelector struct {
	bandit    *Bandit
	mutations map[string]Mutation
}

// NewAdaptiveSelector builds an AdaptiveSelector over mutations, with bandit
// driving which name gets picked each generation.
func NewAdaptiveSelector(bandit *Bandit, mutations ...Mutation) *AdaptiveSelector {
	m := make(map[string]Mutation, len(mutations))
	for _, mu := range mutations {
		m[mu.Name()] = mu
	}

	return &AdaptiveSelector{bandit: bandit, mutations: m}
}

// Select implements Selector.
func (s *AdaptiveSelector) Select(generation int, env *core.Environment) Mutation {
	return s.mutations[s.bandit.Select(generation, env.Random)]
}

// Reward implements Selector.
func (s *AdaptiveSelector) Reward(name string, from, to SolutionState, reward float64) {
	s.bandit.Reward(name, from, to, reward)
}

// StaticSelective picks among fixed weights, switching from coldWeights to
// warmWeights once generation reaches ColdGenerations.
type StaticSelective struct {
	mutations       map[string]Mutation
	order           []string
	coldWeights     map[string]float64
	warmWeights     map[string]float64
	ColdGenerations int
}

// NewStaticSelective builds a StaticSelective. coldWeights/warmWeights must
// key by Mutation.Name(); a name absent from a phase's map is treated as
// weight zero for that phase.
func NewStaticSelective(coldGenerations int, coldWeights, warmWeights map[string]float64, mutations ...Mutation) *StaticSelective {
	s := &StaticSelective{
		mutations:       make(map[string]Mutation, len(mutations)),
		order:           make([]string, 0, len(mutations)),
		coldWeights:     coldWeights,
		warmWeights:     warmWeights,
		ColdGenerations: coldGenerations,
	}
	for _, mu := range mutations {
		s.mutations[mu.Name()] = mu
		s.order = append(s.order, mu.Name())
	}

	return s
}

// Select implements Selector.
func (s *StaticSelective) Select(generation int, env *core.Environment) Mutation {
	weights := s.warmWeights
	if generation < s.ColdGenerations {
		weights = s.coldWeights
	}

	var total float64
	for _, name := range s.order {
		total += weights[name]
	}
	if total <= 0 {
		return s.mutations[s.order[0]]
	}

	roll := env.Random.Float64() * total
	for _, name := range s.order {
		roll -= weights[name]
		if roll <= 0 {
			return s.mutations[name]
		}
	}

	return s.mutations[s.order[len(s.order)-1]]
}

// Reward implements Selector as a no-op: fixed weights never adapt.
func (s *StaticSelective) Reward(string, SolutionState, SolutionState, float64) {}
