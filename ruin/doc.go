// Package ruin implements the destroy side of ruin-and-recreate (§4.7):
// operators that pull a subset of served jobs back into Required so a
// construction.Recreator can re-place them differently next round.
package ruin
