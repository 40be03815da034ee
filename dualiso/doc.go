// Package dualiso enumerates dual subgraph isomorphisms: injective mappings ψ
// from query vertices to data vertices such that every query edge (u, u')
// lands on a data edge (ψ(u), ψ(u')) with an equal edge label.
//
// What:
//
//   - Seed φ with label-feasible mates, prune to the Dual Simulation fixpoint.
//   - Fix query vertices in index order 0..|Q|-1. For each untried candidate v
//     of the current vertex that is not already used, copy φ (btree
//     copy-on-write), set φ(d) = {v}, prune again and descend unless some set
//     emptied.
//   - At depth |Q| every set is a singleton; the tuple is a bijection.
//
// The search runs on an explicit stack of frames, so query size never bounds
// goroutine stack depth.
//
// Why Dual Simulation at every node?
//
//   - Subgraph isomorphism is NP-complete; the fixpoint collapses most dead
//     branches before they are explored.
//   - A fully fixed state that survives the fixpoint is already a witness, so
//     leaves need no separate edge check.
//
// Limits:
//
//	WithLimit(n)        stop after n bijections (DefaultLimit = 1_000_000)
//	WithContext(ctx)    deadline/cancellation, checked before every step
//
// Neither is an error by itself: Result.Truncated and Result.Stop tell the
// caller whether the enumeration is complete. Cancellation additionally returns
// ctx.Err() alongside the partial Result.
//
// Complexity:
//
//   - Time:   exponential in |Q| in the worst case; every node costs one dual prune
//   - Memory: O(|Q| · depth) set headers plus the copy-on-write deltas
//
// Errors:
//
//	match.ErrGraphNil     – nil data or query graph
//	ErrOptionViolation    – invalid option (non-positive limit)
//	context errors        – search cancelled or past its deadline
package dualiso
