// Package graphsim implements Graph Simulation: one-directional (children-only)
// fixpoint pruning of a candidate state.
//
// A data vertex v survives in φ(u) iff for every query edge u→u_c some child
// of v lies in φ(u_c) (through an edge with the query edge's label, unless edge
// labels are ignored). The loop repeats until a full pass removes nothing.
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
//   - Time:   O(P · Σ_u |φ(u)| · deg_Q(u) · deg_G · log n), P = number of passes ≤ Σ|φ₀(u)|
//   - Memory: O(max |φ(u)|) per pass for the iteration snapshot
//
// Errors:
//
//   - match.ErrGraphNil   data or query graph is nil
package graphsim
