// Package labeled provides an immutable, vertex- and edge-labeled directed graph
// used as the data and query model of the lvmatch pattern matchers.
//
// The Graph G = (V,E,l_V,l_E) is identified by dense vertex ids 0..Size()-1:
//
//   - Children(u)     sorted, de-duplicated outgoing adjacency
//   - Label(v)        one vertex label per vertex
//   - EdgeLabel(u,v)  one label per edge (u,v); lookup on a non-edge panics
//   - Parents(v)      exact transpose of Children, built once on demand
//   - LabelIndex(ℓ)   ascending vertex ids carrying label ℓ
//
// Why an immutable graph?
//
//   - Matchers read the same data graph from many goroutines without locks.
//   - Every transformation (Undirected, Induced) returns a new Graph value.
//   - The only lazy state is the inverse adjacency, guarded by sync.Once.
//
// Construction:
//
//	New(children, vertexLabels, edgeLabels, opts...)      // explicit arrays
//	FromMatrix(adj, vertexLabels, edgeLabelFn, opts...)   // gonum mat.Matrix, non-zero = edge
//
// Options:
//
//	– WithName(name)               informational name (loaders, catalog)
//	– WithInverseAdjacency()       build Parents eagerly
//	– WithDefaultEdgeLabel(ℓ)      label for edges missing from the edge-label map
//	– WithoutValidation()          trusted input; call ValidateEdges/ValidateEdgeLabels yourself
//
// Validation:
//
//	ValidateEdges()       (bool, string)  first out-of-range child id
//	ValidateEdgeLabels()  (bool, string)  first edge-label key without an adjacency entry
//
// Errors:
//
//	ErrInvalidGraph         – construction input violates a structural invariant
//	ErrVertexOutOfRange     – (panic) vertex id outside [0, Size())
//	ErrNotAnEdge            – (panic) EdgeLabel queried for a non-edge
//	ErrNoInverseAdjacency   – (panic) Parents queried before BuildInverseAdjacency
//
// Label type L is any cmp.Ordered type; ordering keeps the label index and every
// listing deterministic.
package labeled
