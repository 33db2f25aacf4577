// File: mutation.go
// Role: The four mutation kinds of §4.8 step 2: ruin+recreate, a local-search
// operator, an LKH-style route-internal reordering, and a diversify operator
// for when the search has stalled. Each wraps an existing package (ruin,
// construction, lkh) rather than reimplementing search.
package solver

import (
	"github.com/katalvlaran/vrpcore/construction"
	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/lkh"
	"github.com/katalvlaran/vrpcore/ruin"
)

// Mutation names a candidate-producing transformation applied in place to an
// InsertionContext (callers clone via InsertionContext.DeepCopy before
// mutating, per §3 ownership — Mutate never clones itself).
type Mutation interface {
	Name() string
	Mutate(ic *core.InsertionContext)
}

// RuinRecreate samples one ruin operator and one recreator from the supplied
// registries and composes them — §4.8 mutation (a).
type RuinRecreate struct {
	Ruin     *ruin.Registry
	Recreate *construction.Registry
}

// Name implements Mutation.
func (m RuinRecreate) Name() string { return "ruin_recreate" }

// Mutate implements Mutation.
func (m RuinRecreate) Mutate(ic *core.InsertionContext) {
	m.Ruin.Pick(ic.Environment).Ruin(ic)
	m.Recreate.Pick(ic.Environment).Recreate(ic)
}

// LocalSearch removes a single random job and immediately reinserts it via
// the supplied recreator — a minimal, cheap perturbation distinct from a full
// ruin+recreate pass — §4.8 mutation (b).
type LocalSearch struct {
	Recreate construction.Recreator
}

// Name implements Mutation.
func (m LocalSearch) Name() string { return "local_search" }

// Mutate implements Mutation.
func (m LocalSearch) Mutate(ic *core.InsertionContext) {
	ruin.NewRandomJob(ruin.Limit{Absolute: 1}).Ruin(ic)
	m.Recreate.Recreate(ic)
}

// LKHReorder runs the route-internal 2-opt/3-opt optimizer — §4.8 mutation (c).
type LKHReorder struct {
	Optimizer *lkh.Optimizer
}

// Name implements Mutation.
func (m LKHReorder) Name() string { return "lkh_reorder" }

// Mutate implements Mutation.
func (m LKHReorder) Mutate(ic *core.InsertionContext) {
	m.Optimizer.Optimize(ic)
}

// Diversify applies a stronger, wider-reaching ruin (e.g. random-route or
// close-route) followed by a recreator, used when the search has stalled and
// a gentler mutation is unlikely to escape a local optimum — §4.8 mutation (d).
type Diversify struct {
	Ruin     ruin.Operator
	Recreate construction.Recreator
}

// Name implements Mutation.
func (m Diversify) Name() string { return "diversify" }

// Mutate implements Mutation.
func (m Diversify) Mutate(ic *core.InsertionContext) {
	m.Ruin.Ruin(ic)
	m.Recreate.Recreate(ic)
}
