// File: types.go
// Role: Graph, Edge, GraphOption, sentinel errors.
// Concurrency:
//   - A Graph is read-only after New returns; the inverse adjacency is built under sync.Once
//     and published through an atomic flag, so concurrent readers need no locking.

package labeled

import (
	"cmp"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/tidwall/btree"
)

// Sentinel errors for labeled graph construction and contract violations.
var (
	// ErrInvalidGraph indicates construction input that violates a structural invariant.
	ErrInvalidGraph = errors.New("labeled: invalid graph")

	// ErrVertexOutOfRange is the panic value for a vertex id outside [0, Size()).
	ErrVertexOutOfRange = errors.New("labeled: vertex out of range")

	// ErrNotAnEdge is the panic value for an edge-label lookup on a non-edge.
	ErrNotAnEdge = errors.New("labeled: not an edge")

	// ErrNoInverseAdjacency is the panic value for a parent query before
	// BuildInverseAdjacency (or WithInverseAdjacency) was used.
	ErrNoInverseAdjacency = errors.New("labeled: inverse adjacency not built")
)

// Edge identifies the directed edge From→To.
type Edge struct {
	From int
	To   int
}

// GraphOption configures a Graph before construction completes.
type GraphOption func(o *graphOptions)

type graphOptions struct {
	name             string
	inverse          bool
	skipValidation   bool
	defaultEdgeLabel any // holds an L; typed on use
}

// WithName sets an informational graph name.
func WithName(name string) GraphOption {
	return func(o *graphOptions) { o.name = name }
}

// WithInverseAdjacency builds the parent lists during construction.
func WithInverseAdjacency() GraphOption {
	return func(o *graphOptions) { o.inverse = true }
}

// WithoutValidation skips ValidateEdges/ValidateEdgeLabels in New.
// Out-of-range children are then kept as given and reported by ValidateEdges.
func WithoutValidation() GraphOption {
	return func(o *graphOptions) { o.skipValidation = true }
}

// WithDefaultEdgeLabel sets the label assigned to edges that are absent from
// the edge-label map. Without it such edges carry the zero value of L.
// The value must have the graph's label type, or New fails with
// ErrInvalidGraph. An untyped constant infers int, so use
// WithDefaultEdgeLabel[int64](-1) for a Graph[int64].
func WithDefaultEdgeLabel[L cmp.Ordered](label L) GraphOption {
	return func(o *graphOptions) { o.defaultEdgeLabel = label }
}

// Graph is an immutable vertex- and edge-labeled directed graph.
//
// children[u] is sorted ascending and de-duplicated; childLabels[u][i] is the
// label of edge (u, children[u][i]). edgeLabels holds exactly what was supplied
// plus defaults for unlabeled edges, so stray keys survive for ValidateEdgeLabels.
type Graph[L cmp.Ordered] struct {
	name string

	labels      []L
	children    [][]int
	childLabels [][]L
	edgeLabels  map[Edge]L
	edgeCount   int

	// labelIndex maps a vertex label to its ascending vertex ids. Read-only after New.
	labelIndex btree.Map[L, []int]

	inverseOnce  sync.Once
	inverseReady atomic.Bool
	parents      [][]int
	parentLabels [][]L
}
