// Package fixture generates synthetic Problem values for deterministic,
// repeated test runs (§1.4): a grid-of-jobs builder, whose layout uses no
// randomness, and a random-sparse builder, whose layout is drawn from an
// explicit PRNG seeded by the caller, never a global one, matching
// core.NewEnvironment's own explicit-seed discipline. Job and vehicle IDs in
// both come from NewID (random UUIDs) and differ between runs.
package fixture
