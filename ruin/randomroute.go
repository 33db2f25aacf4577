// File: randomroute.go
// Role: Random-route ruin (§4.7): remove entire routes, chosen at random,
// until the job budget is spent.
package ruin

import "github.com/katalvlaran/vrpcore/core"

type randomRoute struct {
	limit Limit
}

// NewRandomRoute empties whole routes, picked at random, until roughly limit
// jobs have been returned to Required (a route's last job may overshoot it
// slightly rather than leaving a route half-ruined).
func NewRandomRoute(limit Limit) Operator {
	return randomRoute{limit: limit}
}

// Ruin implements Operator.
func (o randomRoute) Ruin(ic *core.InsertionContext) {
	idx := singleIndex(ic.Problem)
	pool := removableJobs(ic)
	target := o.limit.Resolve(len(pool))
	if target == 0 {
		return
	}

	routes := append([]*core.RouteContext(nil), ic.Solution.Routes...)
	ic.Environment.Random.Shuffle(len(routes), func(i, j int) { routes[i], routes[j] = routes[j], routes[i] })

	removed := 0
	for _, rc := range routes {
		if removed >= target {
			break
		}
		for _, job := range jobsOnRoute(rc, idx, ic.Solution.Locked, nil) {
			removeJob(ic, job)
			removed++
		}
	}
	finalize(ic)
}
