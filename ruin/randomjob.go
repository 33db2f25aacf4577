// File: randomjob.go
// Role: Random-job ruin (§4.7): remove n jobs uniformly at random.
package ruin

import "github.com/katalvlaran/vrpcore/core"

type randomJob struct {
	limit Limit
}

// NewRandomJob removes a uniformly random subset of placed, unlocked jobs.
func NewRandomJob(limit Limit) Operator {
	return randomJob{limit: limit}
}

// Ruin implements Operator.
func (o randomJob) Ruin(ic *core.InsertionContext) {
	pool := removableJobs(ic)
	n := o.limit.Resolve(len(pool))
	if n == 0 {
		return
	}
	ic.Environment.Random.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	for i := 0; i < n; i++ {
		removeJob(ic, pool[i])
	}
	finalize(ic)
}
