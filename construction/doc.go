// Package construction implements the recreator strategies of §4.6: each one
// completes a partial core.InsertionContext until Required is empty or no
// feasible insertion exists for what remains. Most strategies share one
// per-round loop (Strategy.Recreate in recreate.go) and differ only in how they
// rank/select among this round's candidate insertions — cost adjustment and
// selection are the two knobs those recreators configure. Regret-k
// (regret.go) and Slice (slice.go) run their own loops instead.
package construction
