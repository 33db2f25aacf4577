// File: locking.go
// Role: Locking feature (§4.4) — preserves a precomputed set of (job, route)
// assignments the solver must not move off their bound vehicle, optionally in
// strict registration order (scenario G).
package feature

import (
	"github.com/katalvlaran/vrpcore/core"
	"github.com/katalvlaran/vrpcore/goal"
)

type lockingFeature struct {
	// byJob maps a locked job id to the vehicle id it is pinned to, and
	// whether that pin is strict-order.
	byJob map[string]lockedJob
}

type lockedJob struct {
	vehicleID string
	strict    bool
}

// NewLocking returns the Locking feature built from problem.Locks.
func NewLocking(locks []core.Lock) goal.Feature {
	f := &lockingFeature{byJob: make(map[string]lockedJob)}
	for _, lock := range locks {
		for _, id := range lock.JobIDs {
			f.byJob[id] = lockedJob{vehicleID: lock.VehicleID, strict: lock.Strict}
		}
	}

	return goal.Feature{Name: "locking", Constraint: f}
}

func (f *lockingFeature) Evaluate(mc core.MoveContext) *core.ConstraintViolation {
	var job core.Job
	var actor *core.Actor
	switch {
	case mc.Route != nil:
		job, actor = mc.Route.Job, mc.Route.Route.Route.Actor
	case mc.Activity != nil && mc.Activity.Target != nil:
		job, actor = mc.Activity.Target.Job, mc.Activity.Route.Route.Actor
	default:
		return nil
	}
	if job == nil {
		return nil
	}
	lock, ok := f.byJob[job.JobID()]
	if !ok {
		return nil
	}
	if actor.Vehicle.VehicleID() != lock.vehicleID {
		return &core.ConstraintViolation{Code: core.ReasonLocking, Stopped: true}
	}

	return nil
}
