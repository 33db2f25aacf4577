// File: registry.go
// Role: A named, weighted recreator registry, so the solver's mutation
// selection (§4.8) can sample "which recreator this generation" the same way
// it samples ruin operators.
package construction

import "github.com/katalvlaran/vrpcore/core"

// WeightedRecreator pairs a Recreator with its selection weight.
type WeightedRecreator struct {
	Recreator Recreator
	Weight    float64
}

// Registry samples a Recreator by weight, deterministically via the supplied
// PRNG.
type Registry struct {
	entries []WeightedRecreator
	total   float64
}

// NewRegistry builds a Registry over entries.
func NewRegistry(entries ...WeightedRecreator) *Registry {
	r := &Registry{entries: entries}
	for _, e := range entries {
		r.total += e.Weight
	}

	return r
}

// Pick samples one Recreator weighted by registration weight.
func (r *Registry) Pick(env *core.Environment) Recreator {
	if len(r.entries) == 0 {
		return Strategy{Name: "cheapest"}
	}
	if r.total <= 0 {
		return r.entries[0].Recreator
	}
	roll := env.Random.Float64() * r.total
	for _, e := range r.entries {
		roll -= e.Weight
		if roll <= 0 {
			return e.Recreator
		}
	}

	return r.entries[len(r.entries)-1].Recreator
}
