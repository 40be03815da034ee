package match

import (
	"cmp"
	"errors"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/lvmatch/labeled"
)

// ErrGraphNil is returned when a nil data or query graph reaches a matcher.
var ErrGraphNil = errors.New("match: graph is nil")

// Matcher is the capability set every simulation engine provides.
//
// Prune must be idempotent at its fixpoint: Prune(Prune(φ)) = Prune(φ), and it
// may only remove candidates. Prune and PruneIgnoringEdgeLabels may refine φ in
// place; the returned value is the refined state.
type Matcher interface {
	// FeasibleMates returns φ₀ seeded by label equality.
	FeasibleMates() Candidates

	// Prune refines φ to a fixpoint, requiring equal edge labels.
	Prune(phi Candidates) Candidates

	// PruneIgnoringEdgeLabels refines φ checking adjacency only.
	PruneIgnoringEdgeLabels(phi Candidates) Candidates

	// Mappings is Prune(FeasibleMates()) or its edge-label-ignoring variant.
	Mappings(ignoreEdgeLabels bool) Candidates
}

// Observer receives engine events. Implementations must be safe for the
// concurrency the caller uses; engines call them synchronously.
type Observer interface {
	// PrunePass is called after every full pass over the query edges.
	PrunePass(engine string, removed int)

	// Fixpoint is called once a prune loop terminates.
	Fixpoint(engine string, passes int)

	// Bijection is called for every bijection an enumerating engine accepts.
	Bijection(engine string)

	// Truncated is called when a search stops at its match limit or deadline.
	Truncated(engine string)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) PrunePass(string, int) {}
func (NopObserver) Fixpoint(string, int)  {}
func (NopObserver) Bijection(string)      {}
func (NopObserver) Truncated(string)      {}

// FeasibleMates returns, for every query vertex u, a fresh set of the data
// vertices whose label equals Label(q, u). A label absent from the data graph
// yields an empty set, so no match can exist.
func FeasibleMates[L cmp.Ordered](g, q *labeled.Graph[L]) Candidates {
	phi := make(Candidates, q.Size())
	for u := range phi {
		s := new(btree.Set[int])
		// LabelIndex is ascending, which is the cheap path for Load.
		for _, v := range g.LabelIndex(q.Label(u)) {
			s.Load(v)
		}
		phi[u] = s
	}

	return phi
}

// Coverage reports how much of the data graph a candidate state touches.
type Coverage struct {
	// Vertices is the number of distinct data vertices in ⋃φ(u).
	Vertices int

	// Edges is the number of distinct data edges (v, v_c) that witness some query
	// edge (u, u_c) with v ∈ φ(u), v_c ∈ φ(u_c) and (unless ignored) equal labels.
	Edges int
}

// CountMatches returns the coverage of φ. It is a diagnostic, not a match count.
func CountMatches[L cmp.Ordered](g, q *labeled.Graph[L], phi Candidates, ignoreEdgeLabels bool) Coverage {
	edges := matchedEdges(g, q, phi, ignoreEdgeLabels)

	return Coverage{Vertices: len(phi.Union()), Edges: len(edges)}
}

// FilterDataGraph projects g onto the vertices in ⋃φ(u) and the edges counted
// by CountMatches. The result has compact ids; orig[newID] = oldID.
func FilterDataGraph[L cmp.Ordered](g, q *labeled.Graph[L], phi Candidates, ignoreEdgeLabels bool) (*labeled.Graph[L], []int) {
	keep := phi.Union()
	edges := matchedEdges(g, q, phi, ignoreEdgeLabels)

	toNew := make(map[int]int, len(keep))
	for i, v := range keep {
		toNew[v] = i
	}
	children := make([][]int, len(keep))
	vlabels := make([]L, len(keep))
	for i, v := range keep {
		vlabels[i] = g.Label(v)
	}
	elabels := make(map[labeled.Edge]L, len(edges))
	for _, e := range edges {
		from, to := toNew[e.From], toNew[e.To]
		children[from] = append(children[from], to)
		elabels[labeled.Edge{From: from, To: to}] = g.EdgeLabel(e.From, e.To)
	}

	out, _ := labeled.New(children, vlabels, elabels, labeled.WithName(g.Name()), labeled.WithoutValidation())

	return out, keep
}

// matchedEdges returns the distinct data edges witnessing query edges under φ,
// sorted by (From, To).
func matchedEdges[L cmp.Ordered](g, q *labeled.Graph[L], phi Candidates, ignoreEdgeLabels bool) []labeled.Edge {
	var seen btree.Map[int, *btree.Set[int]]
	for u := 0; u < q.Size(); u++ {
		qch, qlab := q.Children(u), q.ChildLabels(u)
		phi[u].Scan(func(v int) bool {
			dch, dlab := g.Children(v), g.ChildLabels(v)
			for i, uc := range qch {
				for j, vc := range dch {
					if !ignoreEdgeLabels && dlab[j] != qlab[i] {
						continue
					}
					if !phi[uc].Contains(vc) {
						continue
					}
					targets, ok := seen.Get(v)
					if !ok {
						targets = new(btree.Set[int])
						seen.Set(v, targets)
					}
					targets.Insert(vc)
				}
			}
			return true
		})
	}

	var out []labeled.Edge
	seen.Scan(func(from int, targets *btree.Set[int]) bool {
		targets.Scan(func(to int) bool {
			out = append(out, labeled.Edge{From: from, To: to})
			return true
		})
		return true
	})

	return out
}
