// File: cancel.go
// Role: The shared cancellation flag of §4.8/§5 — checked by Loop.Run at the
// start of each generation; a mutation already running is not interrupted.
package solver

import "sync/atomic"

// CancelToken is a concurrency-safe flag a caller trips from another
// goroutine (signal handler, HTTP deadline, test timeout) to stop Loop.Run
// cleanly after the current generation.
type CancelToken struct {
	flag atomic.Bool
}

// NewCancelToken returns a token in the not-cancelled state.
func NewCancelToken() *CancelToken {
	return &CancelToken{}
}

// Cancel trips the flag. Safe to call from any goroutine, any number of times.
func (t *CancelToken) Cancel() {
	t.flag.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (t *CancelToken) Cancelled() bool {
	if t == nil {
		return false
	}

	return t.flag.Load()
}
