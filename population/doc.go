// Package population implements the two interchangeable population
// strategies of §4.9: Elitism (a bounded Pareto front) and Rosomaxa (a
// growing self-organizing map over solution weight vectors). Both satisfy
// the same Population interface so the metaheuristic loop can swap between
// them without caring which is in use.
package population
