package dfs

import (
	"cmp"

	"github.com/katalvlaran/lvmatch/labeled"
)

// Search runs depth- or breadth-first traversals over a labeled graph. It keeps
// no state between calls: every method allocates its own visited array, so a
// Search may be shared by goroutines.
type Search[L cmp.Ordered] struct {
	graph *labeled.Graph[L]
	opts  Options
}

// NewSearch binds g to a traversal mode.
// Returns ErrGraphNil for a nil graph and ErrOptionViolation for a bad option.
func NewSearch[L cmp.Ordered](g *labeled.Graph[L], opts ...Option) (*Search[L], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Search[L]{graph: g, opts: o}, nil
}

// Mode returns the traversal discipline.
func (s *Search[L]) Mode() Mode { return s.opts.Mode }

// Find returns the first vertex carrying label in traversal order, rooting a
// new tree at every still-unvisited vertex in ascending id order.
// The error is non-nil only when the bound context is cancelled.
func (s *Search[L]) Find(label L) (int, bool, error) {
	visited := make([]bool, s.graph.Size())
	found := -1
	for root := 0; root < s.graph.Size() && found < 0; root++ {
		if visited[root] {
			continue
		}
		err := s.walk(visited, root, false, func(v int) bool {
			if s.graph.Label(v) == label {
				found = v
				return false
			}
			return true
		})
		if err != nil {
			return -1, false, err
		}
	}

	return found, found >= 0, nil
}

// Reach reports whether dst is reachable from src along directed edges.
// A vertex always reaches itself. Panics on out-of-range ids.
func (s *Search[L]) Reach(src, dst int) (bool, error) {
	s.graph.Label(dst) // range check
	visited := make([]bool, s.graph.Size())
	hit := false
	if err := s.walk(visited, src, false, func(v int) bool {
		hit = v == dst
		return !hit
	}); err != nil {
		return false, err
	}

	return hit, nil
}

// Visit returns the vertices reachable from src in traversal order.
func (s *Search[L]) Visit(src int) ([]int, error) {
	visited := make([]bool, s.graph.Size())
	var order []int
	if err := s.walk(visited, src, false, func(v int) bool {
		order = append(order, v)
		return true
	}); err != nil {
		return nil, err
	}

	return order, nil
}

// WeakComponentCount returns the number of connected components of the
// underlying undirected graph. It builds the inverse adjacency if missing.
func (s *Search[L]) WeakComponentCount() (int, error) {
	s.graph.BuildInverseAdjacency()
	visited := make([]bool, s.graph.Size())
	count := 0
	for root := 0; root < s.graph.Size(); root++ {
		if visited[root] {
			continue
		}
		count++
		if err := s.walk(visited, root, true, func(int) bool { return true }); err != nil {
			return 0, err
		}
	}

	return count, nil
}

// WeakComponents returns the weak components as ascending id lists, ordered by
// their smallest vertex.
func (s *Search[L]) WeakComponents() ([][]int, error) {
	s.graph.BuildInverseAdjacency()
	visited := make([]bool, s.graph.Size())
	comp := make([]int, s.graph.Size())
	var out [][]int
	for root := 0; root < s.graph.Size(); root++ {
		if visited[root] {
			continue
		}
		id := len(out)
		out = append(out, nil)
		if err := s.walk(visited, root, true, func(v int) bool {
			comp[v] = id
			return true
		}); err != nil {
			return nil, err
		}
	}
	for v, c := range comp {
		out[c] = append(out[c], v)
	}

	return out, nil
}

// item is a frontier entry: a vertex and its hop distance from the root.
type item struct {
	v     int
	depth int
}

// walk visits every unvisited vertex reachable from root, calling fn in
// traversal order until fn returns false. When undirected is set, parents are
// followed as well as children. Marks vertices in visited.
// Returns ctx.Err() as soon as the bound context is done.
func (s *Search[L]) walk(visited []bool, root int, undirected bool, fn func(v int) bool) error {
	frontier := []item{{v: root}}
	if s.opts.Mode == BreadthFirst {
		visited[root] = true
	}

	for len(frontier) > 0 {
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}

		// 1) Pop: stack top for DFS, queue head for BFS.
		var it item
		if s.opts.Mode == BreadthFirst {
			it, frontier = frontier[0], frontier[1:]
		} else {
			it, frontier = frontier[len(frontier)-1], frontier[:len(frontier)-1]
			if visited[it.v] {
				continue
			}
			visited[it.v] = true
		}
		if !fn(it.v) {
			return nil
		}
		if s.opts.MaxDepth >= 0 && it.depth >= s.opts.MaxDepth {
			continue
		}

		// 2) Expand. DFS pushes in reverse so lower ids are visited first.
		next := s.neighbors(it.v, undirected)
		if s.opts.Mode == BreadthFirst {
			for _, w := range next {
				if !visited[w] {
					visited[w] = true
					frontier = append(frontier, item{v: w, depth: it.depth + 1})
				}
			}
			continue
		}
		for i := len(next) - 1; i >= 0; i-- {
			if !visited[next[i]] {
				frontier = append(frontier, item{v: next[i], depth: it.depth + 1})
			}
		}
	}

	return nil
}

// neighbors returns the children of v, merged with its parents when undirected.
func (s *Search[L]) neighbors(v int, undirected bool) []int {
	ch := s.graph.Children(v)
	if !undirected {
		return ch
	}
	ps := s.graph.Parents(v)
	out := make([]int, 0, len(ch)+len(ps))
	i, j := 0, 0
	for i < len(ch) || j < len(ps) {
		switch {
		case j == len(ps) || (i < len(ch) && ch[i] < ps[j]):
			out = append(out, ch[i])
			i++
		case i == len(ch) || ps[j] < ch[i]:
			out = append(out, ps[j])
			j++
		default:
			out = append(out, ch[i])
			i++
			j++
		}
	}

	return out
}
