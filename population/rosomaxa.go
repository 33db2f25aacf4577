// File: rosomaxa.go
// Role: Rosomaxa population (§4.9): a growing self-organizing map over a
// solution weight vector, with capacity-bounded nodes, a spread factor
// controlling when a new node is grown vs. an existing one adjusted, and a
// periodic reshape evicting stale nodes once the map is over capacity.
package population

import (
	"math"
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/vrpcore/core"
)

// nodeCapacity bounds how many solutions one SOM node retains, keeping the
// best nodeCapacity (by TotalOrder) when a node overflows.
const nodeCapacity = 8

// defaultLearningRate is how far an updated node's weight moves toward a
// newly assigned solution's weight vector each time (classic SOM update).
const defaultLearningRate = 0.25

type rosoNode struct {
	weight  []float64
	members []*core.InsertionContext
	touched int
}

// Rosomaxa is a growing SOM over WeightVector-derived points.
type Rosomaxa struct {
	goal            core.GoalContext
	weightFunc      WeightVector
	maxNodes        int
	spreadFactor    float64
	rebalancePeriod int
	generation      int
	nodes           []*rosoNode
	logger          hclog.Logger
}

// NewRosomaxa returns an empty Rosomaxa. spreadFactor is the Euclidean
// distance beyond which a new node is grown (while under maxNodes) rather
// than nudging the nearest existing node; rebalancePeriod is how many Add
// calls between reshape passes.
func NewRosomaxa(goal core.GoalContext, weightFunc WeightVector, maxNodes int, spreadFactor float64, rebalancePeriod int) *Rosomaxa {
	if maxNodes < 1 {
		maxNodes = 1
	}
	if rebalancePeriod < 1 {
		rebalancePeriod = 1
	}

	return &Rosomaxa{
		goal:            goal,
		weightFunc:      weightFunc,
		maxNodes:        maxNodes,
		spreadFactor:    spreadFactor,
		rebalancePeriod: rebalancePeriod,
		logger:          hclog.NewNullLogger(),
	}
}

// WithLogger attaches a diagnostics logger (§1.1), replacing the default null
// logger. Returns r for chaining.
func (r *Rosomaxa) WithLogger(logger hclog.Logger) *Rosomaxa {
	if logger != nil {
		r.logger = logger
	}

	return r
}

func euclidean(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum)
}

func (r *Rosomaxa) nearest(w []float64) *rosoNode {
	var best *rosoNode
	bestDist := math.MaxFloat64
	for _, n := range r.nodes {
		d := euclidean(n.weight, w)
		if d < bestDist {
			bestDist = d
			best = n
		}
	}

	return best
}

// Add implements Population.
func (r *Rosomaxa) Add(ic *core.InsertionContext) bool {
	w := r.weightFunc(ic)
	r.generation++

	node := r.nearest(w)
	grew := false
	if node == nil || (euclidean(node.weight, w) > r.spreadFactor && len(r.nodes) < r.maxNodes) {
		node = &rosoNode{weight: append([]float64(nil), w...)}
		r.nodes = append(r.nodes, node)
		grew = true
	} else {
		for i := range node.weight {
			if i >= len(w) {
				break
			}
			node.weight[i] += defaultLearningRate * (w[i] - node.weight[i])
		}
	}
	node.touched = r.generation
	node.members = append(node.members, ic)
	if len(node.members) > nodeCapacity {
		sort.Slice(node.members, func(i, j int) bool { return r.goal.TotalOrder(node.members[i], node.members[j]) < 0 })
		node.members = node.members[:nodeCapacity]
	}

	if r.generation%r.rebalancePeriod == 0 {
		r.reshape()
	}
	r.logger.Debug("rosomaxa: node updated", "nodes", len(r.nodes), "grew", grew)

	return grew
}

// reshape evicts the least-recently-touched nodes once the map exceeds
// maxNodes (§4.9 "a periodic reshape evicts old nodes").
func (r *Rosomaxa) reshape() {
	if len(r.nodes) <= r.maxNodes {
		return
	}
	sort.Slice(r.nodes, func(i, j int) bool { return r.nodes[i].touched > r.nodes[j].touched })
	r.nodes = r.nodes[:r.maxNodes]
}

func (r *Rosomaxa) weakest() *rosoNode {
	var best *rosoNode
	for _, n := range r.nodes {
		if best == nil || len(n.members) < len(best.members) {
			best = n
		}
	}

	return best
}

func (r *Rosomaxa) elite() *rosoNode {
	var best *rosoNode
	for _, n := range r.nodes {
		if len(n.members) == 0 {
			continue
		}
		if best == nil {
			best = n

			continue
		}
		if r.goal.TotalOrder(n.members[0], best.members[0]) < 0 {
			best = n
		}
	}

	return best
}

// Select implements Population: alternates between exploration (sample from
// a weakly-populated node) and exploitation (sample from the node holding
// the best-ranked member).
func (r *Rosomaxa) Select(m int, env *core.Environment) []*core.InsertionContext {
	if len(r.nodes) == 0 || m <= 0 {
		return nil
	}
	var out []*core.InsertionContext
	attempts := 0
	for len(out) < m && attempts < m*4 {
		attempts++
		var node *rosoNode
		if env.Random.Float64() < 0.5 {
			node = r.weakest()
		} else {
			node = r.elite()
		}
		if node == nil || len(node.members) == 0 {
			continue
		}
		out = append(out, node.members[env.Random.Intn(len(node.members))])
	}

	return out
}

// Best implements Population.
func (r *Rosomaxa) Best() *core.InsertionContext {
	var best *core.InsertionContext
	for _, n := range r.nodes {
		for _, m := range n.members {
			if best == nil || r.goal.TotalOrder(m, best) < 0 {
				best = m
			}
		}
	}

	return best
}

// NodeCount returns the current number of SOM nodes.
func (r *Rosomaxa) NodeCount() int { return len(r.nodes) }
