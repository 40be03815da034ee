// Package dualsim implements Dual Simulation: two-directional fixpoint pruning
// of a candidate state.
//
// For every query edge u→u_c the engine keeps v in φ(u) only if some child of v
// lies in φ(u_c), and shrinks φ(u_c) to the children actually reached from the
// surviving φ(u). Pruning therefore flows from parent candidates to child
// candidates and back within one pass. Every candidate surviving Dual
// Simulation also survives Graph Simulation, not conversely.
//
// What:
//
//   - New(data, query, opts...)       bind the graphs (match.WithObserver)
//   - Prune / PruneIgnoringEdgeLabels refine φ to the fixpoint
//   - Mappings                        FeasibleMates + Prune in one call
//   - Prune(g, q, φ, useEdgeLabels)   the same rule without a bound matcher
//
// Complexity:
//
//   - Time:   O(P · Σ_{u→u_c} |φ(u)| · deg_G · log n), P = number of passes
//   - Memory: O(n) per query edge for the reached-children set
//
// Errors:
//
//   - match.ErrGraphNil   data or query graph is nil
package dualsim
