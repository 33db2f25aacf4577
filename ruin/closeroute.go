// File: closeroute.go
// Role: Close-route ruin (§4.7): remove every job of one route, chosen at
// random, unconditionally (no budget — a route is closed or it isn't).
package ruin

import "github.com/katalvlaran/vrpcore/core"

type closeRoute struct{}

// NewCloseRoute empties exactly one randomly chosen route.
func NewCloseRoute() Operator {
	return closeRoute{}
}

// Ruin implements Operator.
func (o closeRoute) Ruin(ic *core.InsertionContext) {
	if len(ic.Solution.Routes) == 0 {
		return
	}
	idx := singleIndex(ic.Problem)
	pick := ic.Environment.Random.Intn(len(ic.Solution.Routes))
	rc := ic.Solution.Routes[pick]
	for _, job := range jobsOnRoute(rc, idx, ic.Solution.Locked, nil) {
		removeJob(ic, job)
	}
	finalize(ic)
}
