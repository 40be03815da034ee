package graphsim

import (
	"cmp"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/lvmatch/labeled"
	"github.com/katalvlaran/lvmatch/match"
)

// Engine is the name reported to match.Observer.
const Engine = "graphsim"

// GraphSim binds a data graph and a query graph to the Graph Simulation rule.
type GraphSim[L cmp.Ordered] struct {
	match.Base[L]
}

var _ match.Matcher = (*GraphSim[int])(nil)

// New returns a Graph Simulation matcher for data graph g and query graph q.
// Returns match.ErrGraphNil if either graph is nil.
func New[L cmp.Ordered](g, q *labeled.Graph[L], opts ...match.Option) (*GraphSim[L], error) {
	base, err := match.NewBase(g, q, opts...)
	if err != nil {
		return nil, err
	}

	return &GraphSim[L]{Base: base}, nil
}

// Prune refines phi in place to the edge-label-aware Graph Simulation fixpoint.
func (s *GraphSim[L]) Prune(phi match.Candidates) match.Candidates {
	return prune(s.Data, s.Query, phi, true, s.Options.Observer)
}

// PruneIgnoringEdgeLabels refines phi in place checking adjacency only.
func (s *GraphSim[L]) PruneIgnoringEdgeLabels(phi match.Candidates) match.Candidates {
	return prune(s.Data, s.Query, phi, false, s.Options.Observer)
}

// Mappings returns the fixpoint reached from the feasible mates.
func (s *GraphSim[L]) Mappings(ignoreEdgeLabels bool) match.Candidates {
	phi := s.FeasibleMates()
	if ignoreEdgeLabels {
		return s.PruneIgnoringEdgeLabels(phi)
	}

	return s.Prune(phi)
}

// Prune refines phi in place to the Graph Simulation fixpoint of (g, q).
// A state that already holds an empty set is returned unchanged.
func Prune[L cmp.Ordered](g, q *labeled.Graph[L], phi match.Candidates, useEdgeLabels bool) match.Candidates {
	return prune(g, q, phi, useEdgeLabels, match.NopObserver{})
}

func prune[L cmp.Ordered](g, q *labeled.Graph[L], phi match.Candidates, useEdgeLabels bool, obs match.Observer) match.Candidates {
	if phi.AnyEmpty() {
		return phi
	}

	passes := 0
	for {
		passes++
		removed := 0
		for u := 0; u < q.Size(); u++ {
			qch, qlab := q.Children(u), q.ChildLabels(u)
			if len(qch) == 0 {
				continue
			}
			// Snapshot: deleting from a btree while scanning it is not allowed.
			for _, v := range phi[u].Keys() {
				for i, uc := range qch {
					if hasMate(g, v, phi[uc], qlab[i], useEdgeLabels) {
						continue
					}
					phi[u].Delete(v)
					removed++
					if phi[u].Len() == 0 {
						// no label-consistent mapping for u
						obs.PrunePass(Engine, removed)
						obs.Fixpoint(Engine, passes)
						return phi
					}
					break
				}
			}
		}
		obs.PrunePass(Engine, removed)
		if removed == 0 {
			break
		}
	}
	obs.Fixpoint(Engine, passes)

	return phi
}

// hasMate reports whether some child of v (through an edge labeled label when
// useEdgeLabels) is a candidate in set.
func hasMate[L cmp.Ordered](g *labeled.Graph[L], v int, set *btree.Set[int], label L, useEdgeLabels bool) bool {
	dch, dlab := g.Children(v), g.ChildLabels(v)
	for j, vc := range dch {
		if useEdgeLabels && dlab[j] != label {
			continue
		}
		if set.Contains(vc) {
			return true
		}
	}

	return false
}
