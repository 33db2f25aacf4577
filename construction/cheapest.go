// File: cheapest.go
// Role: Cheapest recreator (§4.6) — at each step, the (job, route, position)
// with globally minimum cost. This is exactly the Strategy defaults, given
// its own named constructor for discoverability/registration.
package construction

// NewCheapest returns the Cheapest recreator.
func NewCheapest() Recreator {
	return Strategy{Name: "cheapest"}
}
