// File: dedup.go
// Role: (route,job) removal-set dedup (§2 domain-stack wiring), used where an
// operator's traversal can revisit the same job from more than one path
// within a single Ruin pass (adjacent-string's successive seeds can land on
// the same route).
package ruin

import (
	"github.com/mitchellh/hashstructure/v2"
)

// removalKey hashes a (route actor id, job id) pair into a dedup-set key.
// Falls back to 0 on the essentially-unreachable hashstructure error path
// (both fields are plain strings), which only risks an extra skipped
// duplicate, never a wrongly-kept one.
func removalKey(routeActorID, jobID string) uint64 {
	key, err := hashstructure.Hash(struct {
		Route string
		Job   string
	}{routeActorID, jobID}, hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}

	return key
}
