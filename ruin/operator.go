// File: operator.go
// Role: The shared Operator contract and removal budget (§4.7 "a limit,
// absolute or fraction of total jobs").
package ruin

import "github.com/katalvlaran/vrpcore/core"

// Operator destroys part of ic's working solution, moving the removed jobs
// back into ic.Solution.Required. It never re-inserts anything; that is
// construction's job.
type Operator interface {
	Ruin(ic *core.InsertionContext)
}

// Limit bounds how many jobs one Ruin call removes. Absolute takes priority
// when set (>0); otherwise Fraction of the removable pool is used, rounded up.
// A zero Limit resolves to removing exactly one job.
type Limit struct {
	Absolute int
	Fraction float64
}

// Resolve turns the limit into a concrete job count, never exceeding total and
// never less than 1 (when total > 0).
func (l Limit) Resolve(total int) int {
	if total <= 0 {
		return 0
	}
	n := l.Absolute
	if n <= 0 && l.Fraction > 0 {
		n = int(l.Fraction * float64(total))
		if float64(n) < l.Fraction*float64(total) {
			n++ // round up, so a small fraction of a small pool still removes something
		}
	}
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}

	return n
}
