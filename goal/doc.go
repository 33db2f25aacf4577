// Package goal composes Features into a core.GoalContext: the feature
// framework that expresses every VRP variant purely through which
// constraints/objectives/state-updaters are registered and in what order
// (§4.3). The heuristic engine (insertion, construction, ruin, solver) never
// special-cases a variant; it only calls Context.Evaluate/Estimate/TotalOrder.
package goal
