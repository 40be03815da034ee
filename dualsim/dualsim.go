package dualsim

import (
	"cmp"

	"github.com/tidwall/btree"

	"github.com/katalvlaran/lvmatch/labeled"
	"github.com/katalvlaran/lvmatch/match"
)

// Engine is the name reported to match.Observer.
const Engine = "dualsim"

// DualSim binds a data graph and a query graph to the Dual Simulation rule.
type DualSim[L cmp.Ordered] struct {
	match.Base[L]
}

var _ match.Matcher = (*DualSim[int])(nil)

// New returns a Dual Simulation matcher for data graph g and query graph q.
// Returns match.ErrGraphNil if either graph is nil.
func New[L cmp.Ordered](g, q *labeled.Graph[L], opts ...match.Option) (*DualSim[L], error) {
	base, err := match.NewBase(g, q, opts...)
	if err != nil {
		return nil, err
	}

	return &DualSim[L]{Base: base}, nil
}

// Prune refines phi in place to the edge-label-aware Dual Simulation fixpoint.
func (s *DualSim[L]) Prune(phi match.Candidates) match.Candidates {
	return prune(s.Data, s.Query, phi, true, s.Options.Observer)
}

// PruneIgnoringEdgeLabels refines phi in place checking adjacency only.
func (s *DualSim[L]) PruneIgnoringEdgeLabels(phi match.Candidates) match.Candidates {
	return prune(s.Data, s.Query, phi, false, s.Options.Observer)
}

// Mappings returns the fixpoint reached from the feasible mates.
func (s *DualSim[L]) Mappings(ignoreEdgeLabels bool) match.Candidates {
	phi := s.FeasibleMates()
	if ignoreEdgeLabels {
		return s.PruneIgnoringEdgeLabels(phi)
	}

	return s.Prune(phi)
}

// Prune refines phi in place to the Dual Simulation fixpoint of (g, q).
// A state that already holds an empty set is returned unchanged.
func Prune[L cmp.Ordered](g, q *labeled.Graph[L], phi match.Candidates, useEdgeLabels bool) match.Candidates {
	return prune(g, q, phi, useEdgeLabels, match.NopObserver{})
}

// PruneObserved is Prune reporting passes and the fixpoint to obs.
func PruneObserved[L cmp.Ordered](g, q *labeled.Graph[L], phi match.Candidates, useEdgeLabels bool, obs match.Observer) match.Candidates {
	if obs == nil {
		obs = match.NopObserver{}
	}

	return prune(g, q, phi, useEdgeLabels, obs)
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
			for i, uc := range qch {
				n, empty := refineEdge(g, phi, u, uc, qlab[i], useEdgeLabels)
				removed += n
				if empty {
					obs.PrunePass(Engine, removed)
					obs.Fixpoint(Engine, passes)
					return phi
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

// refineEdge applies the dual rule to the query edge u→uc and returns the
// number of removed candidates and whether some set became empty.
func refineEdge[L cmp.Ordered](g *labeled.Graph[L], phi match.Candidates, u, uc int, label L, useEdgeLabels bool) (int, bool) {
	removed := 0
	var reached btree.Set[int]

	// Parent side: drop v without a child candidate, collect what is reached.
	for _, v := range phi[u].Keys() {
		found := false
		dch, dlab := g.Children(v), g.ChildLabels(v)
		for j, vc := range dch {
			if useEdgeLabels && dlab[j] != label {
				continue
			}
			if phi[uc].Contains(vc) {
				reached.Insert(vc)
				found = true
			}
		}
		if found {
			continue
		}
		phi[u].Delete(v)
		removed++
		if phi[u].Len() == 0 {
			return removed, true
		}
	}

	// Child side: φ(uc) := φ(uc) ∩ reached. For a self-loop (u == uc) a kept v
	// may have lost its only mate during the scan; the next pass removes it.
	for _, w := range phi[uc].Keys() {
		if !reached.Contains(w) {
			phi[uc].Delete(w)
			removed++
		}
	}

	return removed, phi[uc].Len() == 0
}
