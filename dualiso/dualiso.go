package dualiso

import (
	"cmp"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/btree"

	"github.com/katalvlaran/lvmatch/dualsim"
	"github.com/katalvlaran/lvmatch/labeled"
	"github.com/katalvlaran/lvmatch/match"
)

// DualIso enumerates dual subgraph isomorphisms of a query graph in a data graph.
type DualIso[L cmp.Ordered] struct {
	match.Base[L]
	opts Options
}

var _ match.Matcher = (*DualIso[int])(nil)

// New returns a DualIso engine for data graph g and query graph q.
// Returns match.ErrGraphNil for a nil graph and ErrOptionViolation for an
// invalid option.
func New[L cmp.Ordered](g, q *labeled.Graph[L], opts ...Option) (*DualIso[L], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	base, err := match.NewBase(g, q, match.WithObserver(o.Observer))
	if err != nil {
		return nil, err
	}

	return &DualIso[L]{Base: base, opts: o}, nil
}

// Prune refines phi in place with Dual Simulation; the isomorphism engine uses
// it as its pruning oracle.
func (d *DualIso[L]) Prune(phi match.Candidates) match.Candidates {
	return dualsim.PruneObserved(d.Data, d.Query, phi, true, d.opts.Observer)
}

// PruneIgnoringEdgeLabels refines phi in place checking adjacency only.
func (d *DualIso[L]) PruneIgnoringEdgeLabels(phi match.Candidates) match.Candidates {
	return dualsim.PruneObserved(d.Data, d.Query, phi, false, d.opts.Observer)
}

// Mappings returns the candidate-set view of the enumerated bijections.
//
// A search stopped by its context contributes the bijections found so far, and
// the view cannot tell that apart from a complete one: the cut is only logged
// at Warn level. Callers that must detect a timeout use Bijections and check
// the error or Result.Stop.
func (d *DualIso[L]) Mappings(ignoreEdgeLabels bool) match.Candidates {
	o := d.opts
	o.IgnoreEdgeLabels = ignoreEdgeLabels
	res, err := d.search(o)
	if err != nil {
		o.Logger.WithFields(logrus.Fields{
			"engine":  Engine,
			"matches": len(res.Bijections),
		}).WithError(err).Warn("dualiso: mappings are partial")
	}

	return res.Candidates(d.Query.Size())
}

// Bijections enumerates every bijection ψ: V(Q) → V(G) that is injective and
// maps each query edge onto a data edge (with an equal label unless
// WithIgnoreEdgeLabels is set).
//
// Reaching the limit is not an error: the Result is marked Truncated. When the
// context is cancelled the bijections found so far are returned together with
// ctx.Err().
func (d *DualIso[L]) Bijections() (*Result, error) {
	return d.search(d.opts)
}

// frame is one search node: query vertices [0, depth) are fixed to singletons
// in phi, and cands[next:] are the untried data vertices for query vertex depth.
type frame struct {
	depth int
	phi   match.Candidates
	cands []int
	next  int
}

func (d *DualIso[L]) search(o Options) (*Result, error) {
	res := &Result{Stop: Exhausted}
	n := d.Query.Size()
	useEdgeLabels := !o.IgnoreEdgeLabels
	prune := func(phi match.Candidates) match.Candidates {
		return dualsim.PruneObserved(d.Data, d.Query, phi, useEdgeLabels, o.Observer)
	}

	// 1) An empty query has no vertex to map; report zero bijections.
	if n == 0 {
		return res, nil
	}

	// 2) Seed with label-feasible mates and reduce to the dual fixpoint.
	root := prune(d.FeasibleMates())
	if root.AnyEmpty() {
		return res, nil
	}
	stack := []*frame{{depth: 0, phi: root, cands: root[0].Keys()}}

	// 3) Depth-first over the worklist; each child state fixes one more query
	//    vertex and is pruned before it is pushed.
	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			res.Truncated = true
			res.Stop = Cancelled
			o.Observer.Truncated(Engine)
			o.Logger.WithFields(logrus.Fields{
				"engine":  Engine,
				"matches": len(res.Bijections),
				"steps":   res.Steps,
			}).Warn("dualiso: search cancelled")
			return res, o.Ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		if top.depth == n {
			res.Bijections = append(res.Bijections, singletons(top.phi))
			o.Observer.Bijection(Engine)
			stack = stack[:len(stack)-1]
			if len(res.Bijections) >= o.Limit {
				if hasUntried(stack) {
					res.Truncated = true
					res.Stop = LimitReached
					o.Observer.Truncated(Engine)
					o.Logger.WithFields(logrus.Fields{
						"engine": Engine,
						"limit":  o.Limit,
						"steps":  res.Steps,
					}).Info("dualiso: match limit reached; search truncated")
				}
				return res, nil
			}
			continue
		}
		if top.next == len(top.cands) {
			stack = stack[:len(stack)-1]
			continue
		}

		v := top.cands[top.next]
		top.next++
		if assigned(top.phi, top.depth, v) {
			continue
		}
		res.Steps++

		child := top.phi.Clone()
		fixed := new(btree.Set[int])
		fixed.Insert(v)
		child[top.depth] = fixed
		child = prune(child)
		if child.AnyEmpty() {
			continue
		}
		next := &frame{depth: top.depth + 1, phi: child}
		if next.depth < n {
			next.cands = child[next.depth].Keys()
		}
		stack = append(stack, next)
	}

	return res, nil
}

// assigned reports whether v is already the image of a query vertex below depth.
func assigned(phi match.Candidates, depth, v int) bool {
	for j := 0; j < depth; j++ {
		if phi[j].Contains(v) {
			return true
		}
	}

	return false
}

// hasUntried reports whether some frame still has candidates to try.
func hasUntried(stack []*frame) bool {
	for _, f := range stack {
		if f.next < len(f.cands) {
			return true
		}
	}

	return false
}

// singletons reads the bijection off a fully fixed state.
func singletons(phi match.Candidates) []int {
	psi := make([]int, len(phi))
	for u, s := range phi {
		psi[u], _ = s.Min()
	}

	return psi
}
