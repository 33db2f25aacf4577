// Package insertion implements the insertion heuristic (§4.5): given a job
// and either a concrete route or the whole solution, search feasible
// positions, score them with the goal's estimate, and report either a
// Success (with the activities to place) or a Failure (the blocking
// constraint). Applying a Success is the only way a job moves out of
// required/unassigned in this engine.
package insertion
