// Package builder generates labeled graphs for tests, benchmarks and the
// lvmatch CLI: deterministic shapes, random data graphs and query graphs
// extracted from a data graph.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...)   run constructors over one Draft, freeze to labeled.Graph[int]
//     – Constructor / Draft           extension point for custom topologies
//   - Deterministic constructors (edge label 0):
//     – Path(labels...)               directed path
//     – Cycle(labels...)              directed cycle (one label ⇒ self-loop)
//     – Star(center, leaf, n)         center → n-1 leaves
//     – Complete(labels...)           every ordered pair i≠j
//     – CompleteBipartite(n1, n2, l, r) every left vertex → every right vertex
//     – Grid(rows, cols, label)       row-major lattice, edges right and down
//     – Wheel(hub, rim, n)            rim cycle of n-1 plus hub spokes
//   - Stochastic constructors (need WithSeed/WithRand):
//     – RandomSparse(n, nLabels, p)          directed G(n,p)
//     – RandomLabeled(n, nLabels, avgDegree) exactly round(n·avgDegree) edges
//     – RandomRegular(n, nLabels, d)         out-degree exactly d, no self-loops
//   - Queries:
//     – ExtractQuery(g, size, bopts...)      weakly connected induced subgraph + its embedding
//   - Options:
//     – WithSeed, WithRand, WithEdgeLabels(k), WithInverseAdjacency, WithName
//
// Guarantees:
//
//   - Composition: constructors append vertices, so BuildGraph over several
//     constructors yields their disjoint union in argument order.
//   - Determinism: equal inputs, options and seed give equal graphs.
//   - Constructors return sentinel errors wrapped with method context and never
//     panic; option constructors panic on meaningless values.
package builder
