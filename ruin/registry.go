// File: registry.go
// Role: A named, weighted operator registry mirroring construction.Registry,
// so the solver's mutation selection (§4.8) samples "which ruin operator this
// generation" the same way it samples recreators.
package ruin

import "github.com/katalvlaran/vrpcore/core"

// WeightedOperator pairs an Operator with its selection weight.
type WeightedOperator struct {
	Operator Operator
	Weight   float64
}

// Registry samples an Operator by weight, deterministically via the supplied
// PRNG.
type Registry struct {
	entries []WeightedOperator
	total   float64
}

// NewRegistry builds a Registry over entries.
func NewRegistry(entries ...WeightedOperator) *Registry {
	r := &Registry{entries: entries}
	for _, e := range entries {
		r.total += e.Weight
	}

	return r
}

// Pick samples one Operator weighted by registration weight.
func (r *Registry) Pick(env *core.Environment) Operator {
	if len(r.entries) == 0 {
		return randomJob{limit: Limit{Absolute: 1}}
	}
	if r.total <= 0 {
		return r.entries[0].Operator
	}
	roll := env.Random.Float64() * r.total
	for _, e := range r.entries {
		roll -= e.Weight
		if roll <= 0 {
			return e.Operator
		}
	}

	return r.entries[len(r.entries)-1].Operator
}
