// Package match defines the contract shared by the simulation-based pattern
// matchers (graphsim, dualsim, dualiso) and the candidate-set state they refine.
//
// What:
//
//   - Candidates (φ): one ordered set of data-vertex ids per query vertex,
//     "the data vertices that could still represent this query vertex".
//   - FeasibleMates: the only place label equality seeds the search;
//     φ₀(u) = LabelIndex(data)[Label(query, u)], a fresh copy per call.
//   - Matcher: FeasibleMates, Prune, PruneIgnoringEdgeLabels, Mappings.
//   - CountMatches / FilterDataGraph: diagnostics over a candidate state.
//   - Observer: hooks the engines call on every prune pass, fixpoint,
//     bijection and truncated search (metrics, tracing).
//
// Invariants:
//
//   - Pruning only removes candidates; φ never grows.
//   - An empty φ(u) means no match exists for the current state.
//   - Each Mappings call works on its own φ, so independent matchers may share
//     one read-only data graph across goroutines.
//
// Complexity:
//
//   - FeasibleMates:  O(|Q| + Σ|φ₀(u)| log n)
//   - CountMatches:   O(Σ_u |φ(u)| · Σ_{u_c} deg(v) · log n)
package match
