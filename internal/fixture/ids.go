// File: ids.go
// Role: Default Job/Actor ID generation (§2 domain-stack wiring) for callers
// who don't supply stable IDs of their own.
package fixture

import "github.com/google/uuid"

// NewID returns a fresh random identifier suitable for a job or vehicle
// Dimens entry when the caller has no natural stable ID to use.
func NewID() string {
	return uuid.NewString()
}
