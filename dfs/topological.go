package dfs

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/lvmatch/labeled"
)

// frame is one entry of the explicit DFS stack: vertex v and the index of
// its next child to explore.
type frame struct {
	v    int
	next int
}

// TopologicalSort returns the vertices of g in reverse post-order of a
// three-color DFS, so every edge u→v has u before v. Roots are taken in
// ascending id order and children in ascending order, which makes the
// result deterministic.
//
// On a cycle (a self-loop included) the result is Order{CycleSentinel};
// check Order.Acyclic before use. A nil graph yields an empty Order.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort[L cmp.Ordered](g *labeled.Graph[L]) Order {
	if g == nil {
		return Order{}
	}
	order, _ := topoOrder(context.Background(), g)

	return order
}

// topoOrder is the TopologicalSort loop; it stops with ctx.Err() before
// expanding a vertex once ctx is done.
func topoOrder[L cmp.Ordered](ctx context.Context, g *labeled.Graph[L]) (Order, error) {
	n := g.Size()
	state := make([]int, n) // all White
	post := make([]int, 0, n)
	var stack []frame

	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		stack = append(stack[:0], frame{v: root})

		for len(stack) > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			top := &stack[len(stack)-1]
			ch := g.Children(top.v)
			if top.next == len(ch) {
				// all descendants done
				state[top.v] = Black
				post = append(post, top.v)
				stack = stack[:len(stack)-1]
				continue
			}
			w := ch[top.next]
			top.next++
			switch state[w] {
			case Gray:
				return Order{CycleSentinel}, nil
			case White:
				state[w] = Gray
				stack = append(stack, frame{v: w})
			}
		}
	}

	// reverse post-order
	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}

	return Order(post), nil
}

// TopologicalSortStrict is TopologicalSort returning ErrCycleDetected, with
// one witness cycle in the message, instead of the sentinel.
// With WithCancelContext it returns ctx.Err() once the context is done.
func TopologicalSortStrict[L cmp.Ordered](g *labeled.Graph[L], opts ...TopoOption) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := topoOptions{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	order, err := topoOrder(o.ctx, g)
	if err != nil {
		return nil, fmt.Errorf("dfs: topological sort: %w", err)
	}
	if !order.Acyclic() {
		cycle, _ := FindCycle(g)
		return nil, fmt.Errorf("%w: %v", ErrCycleDetected, cycle)
	}

	return order, nil
}
