// Package lvmatch finds occurrences of a small labeled query graph inside a
// large labeled data graph.
//
// 🚀 What is lvmatch?
//
//	A pattern-matching toolkit over immutable, vertex- and edge-labeled
//	directed graphs, with three engines of increasing strength:
//		• Graph Simulation: every query edge has a witness below each candidate
//		• Dual Simulation: witnesses are required on both parent and child side
//		• Dual Subgraph Isomorphism: injective bijections, pruned by Dual Simulation
//
// ✨ Why lvmatch?
//
//   - Candidate sets are ordered btree sets; snapshots are copy-on-write
//   - Data graphs are read-only, so one graph serves many queries in parallel
//   - Enumeration is bounded by a match limit and a context deadline
//   - Engines report prune passes and bijections to a pluggable Observer
//
// Under the hood:
//
//	labeled/   — Graph model: adjacency, labels, inverse adjacency, views, gonum matrices
//	match/     — candidate sets, the Matcher contract, coverage and data-graph filtering
//	graphsim/  — Graph Simulation fixpoint
//	dualsim/   — Dual Simulation fixpoint
//	dualiso/   — bijection enumeration with limits, cancellation and parallel batches
//	dfs/       — DFS/BFS search, reachability, weak components, topological order, cycles
//	builder/   — deterministic and seeded random graph constructors, query extraction
//	graphio/   — text and YAML graph formats
//	store/     — on-disk catalog of named graph snapshots
//	cmd/lvmatch — command-line front end
//
// Quick ASCII example:
//
//	query  10 ──▶ 11 ──▶ 11
//	data   0(10) ──▶ 1(11) ──▶ 2(11)      ⇒  bijection [0 1 2]
//
//	go get github.com/katalvlaran/lvmatch
package lvmatch
