// Package dfs implements the traversal utilities over labeled.Graph: a
// depth-/breadth-first Search, weak connectivity, topological sort and cycle
// detection.
//
// What:
//
//   - Search (WithMode(DepthFirst|BreadthFirst), WithMaxDepth, WithContext):
//   - Find(ℓ)               first vertex labeled ℓ in traversal order
//   - Reach(src, dst)       directed reachability
//   - Visit(src)            traversal order from src
//   - WeakComponentCount()  components ignoring edge direction (uses Parents)
//   - WeakComponents()      the components themselves
//   - TopologicalSort(g): three-color DFS, reverse post-order. A cycle does not
//     return an error: the Order is Order{CycleSentinel} and Acyclic() is false.
//   - TopologicalSortStrict(g, WithCancelContext(ctx)): same, with
//     ErrCycleDetected instead.
//   - FindCycle(g): one witness cycle, rotated to its smallest id.
//
// Every traversal is iterative and allocates its own visited/color array per
// call, so nothing persists between calls and deep graphs cannot overflow the
// goroutine stack.
//
// Complexity:
//
//   - Search methods:   Time O(V+E), Memory O(V)
//   - TopologicalSort:  Time O(V+E), Memory O(V)
//   - FindCycle:        Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrOptionViolation   unknown Mode
//   - ErrCycleDetected     TopologicalSortStrict on a cyclic graph
//   - ctx.Err()            the bound context was cancelled mid-traversal
package dfs
