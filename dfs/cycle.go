package dfs

import (
	"cmp"

	"github.com/katalvlaran/lvmatch/labeled"
)

// FindCycle returns one directed cycle of g, or (nil, false) if g is acyclic.
// The cycle is the first back edge met by the same traversal TopologicalSort
// runs, reported as the path from the back edge's target to its source and
// rotated to start at its smallest vertex id. A self-loop v→v yields [v].
func FindCycle[L cmp.Ordered](g *labeled.Graph[L]) ([]int, bool) {
	if g == nil {
		return nil, false
	}
	n := g.Size()
	state := make([]int, n)
	var stack []frame

	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		stack = append(stack[:0], frame{v: root})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			ch := g.Children(top.v)
			if top.next == len(ch) {
				state[top.v] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			w := ch[top.next]
			top.next++
			switch state[w] {
			case Gray:
				// back edge top.v→w: the stack from w upward is the cycle
				var cycle []int
				for i := len(stack) - 1; i >= 0; i-- {
					if stack[i].v == w {
						for _, f := range stack[i:] {
							cycle = append(cycle, f.v)
						}
						break
					}
				}
				return rotateToMin(cycle), true
			case White:
				state[w] = Gray
				stack = append(stack, frame{v: w})
			}
		}
	}

	return nil, false
}

// rotateToMin returns c rotated so that its smallest element comes first.
func rotateToMin(c []int) []int {
	if len(c) < 2 {
		return c
	}
	m := 0
	for i, v := range c {
		if v < c[m] {
			m = i
		}
	}

	out := make([]int, 0, len(c))
	out = append(out, c[m:]...)

	return append(out, c[:m]...)
}
