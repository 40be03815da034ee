package dualsim_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/dualsim"
	"github.com/katalvlaran/lvmatch/graphsim"
	"github.com/katalvlaran/lvmatch/labeled"
	"github.com/katalvlaran/lvmatch/match"
)

func fixture(t *testing.T) (g, q *labeled.Graph[int]) {
	t.Helper()
	g, err := labeled.New(
		[][]int{{1, 3}, {2}, {}, {}, {2}, {4}},
		[]int{10, 11, 11, 11, 11, 10},
		map[labeled.Edge]int{{From: 5, To: 4}: -2},
		labeled.WithDefaultEdgeLabel(-1),
	)
	require.NoError(t, err)
	q, err = labeled.New([][]int{{1}, {2}, {}}, []int{10, 11, 11}, nil, labeled.WithDefaultEdgeLabel(-1))
	require.NoError(t, err)

	return g, q
}

func randomGraph(tb testing.TB, r *rand.Rand, n, nLabels int, p float64) *labeled.Graph[int] {
	tb.Helper()
	children := make([][]int, n)
	vlabels := make([]int, n)
	elabels := map[labeled.Edge]int{}
	for u := 0; u < n; u++ {
		vlabels[u] = r.IntN(nLabels)
		for v := 0; v < n; v++ {
			if r.Float64() < p {
				children[u] = append(children[u], v)
				elabels[labeled.Edge{From: u, To: v}] = r.IntN(2)
			}
		}
	}
	g, err := labeled.New(children, vlabels, elabels)
	require.NoError(tb, err)

	return g
}

func TestMappings_Fixture(t *testing.T) {
	g, q := fixture(t)
	sim, err := dualsim.New(g, q)
	require.NoError(t, err)

	// the dead end 0→3 and the -2 edge 5→4 leave only the chain 0→1→2
	assert.Equal(t, [][]int{{0}, {1}, {2}}, sim.Mappings(false).Slices())
	assert.Equal(t, [][]int{{0, 5}, {1, 4}, {2}}, sim.Mappings(true).Slices())
}

func TestMappings_StricterThanGraphSim(t *testing.T) {
	g, q := fixture(t)
	dual, err := dualsim.New(g, q)
	require.NoError(t, err)
	sim, err := graphsim.New(g, q)
	require.NoError(t, err)

	d, s := dual.Mappings(false), sim.Mappings(false)
	assert.True(t, d.SubsetOf(s))
	assert.False(t, s.SubsetOf(d))
}

func TestPrune_SelfLoop(t *testing.T) {
	// query: one vertex with a self-loop; data: 0↺, 1→2→1, 3 (no edges)
	q, err := labeled.New([][]int{{0}}, []string{"a"}, nil)
	require.NoError(t, err)
	g, err := labeled.New([][]int{{0}, {2}, {1}, {}}, []string{"a", "a", "a", "a"}, nil)
	require.NoError(t, err)

	phi := dualsim.Prune(g, q, match.FeasibleMates(g, q), true)
	assert.Equal(t, [][]int{{0, 1, 2}}, phi.Slices())
}

func TestPrune_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 1))
	for i := 0; i < 60; i++ {
		g := randomGraph(t, r, 12, 3, 0.2)
		q := randomGraph(t, r, 4, 3, 0.3)
		for _, useLabels := range []bool{true, false} {
			before := match.FeasibleMates(g, q)
			dual := dualsim.Prune(g, q, before.Clone(), useLabels)
			require.True(t, dual.SubsetOf(before), "monotone, iteration %d", i)

			again := dualsim.Prune(g, q, dual.Clone(), useLabels)
			require.True(t, again.Equal(dual), "idempotent, iteration %d", i)

			sim := graphsim.Prune(g, q, before.Clone(), useLabels)
			if !dual.AnyEmpty() {
				require.True(t, dual.SubsetOf(sim), "selectivity, iteration %d: %v ⊄ %v", i, dual, sim)
			}
		}
	}
}

func TestPrune_FixpointHoldsBothDirections(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	for i := 0; i < 60; i++ {
		g := randomGraph(t, r, 10, 2, 0.25)
		q := randomGraph(t, r, 3, 2, 0.4)
		g.BuildInverseAdjacency()
		phi := dualsim.Prune(g, q, match.FeasibleMates(g, q), true)
		if phi.AnyEmpty() {
			continue
		}
		for u := 0; u < q.Size(); u++ {
			for _, uc := range q.Children(u) {
				label := q.EdgeLabel(u, uc)
				for _, v := range phi[u].Keys() {
					require.True(t, anyIn(g.ChildrenWithEdgeLabel(v, label), phi[uc]), "iteration %d: child rule", i)
				}
				for _, w := range phi[uc].Keys() {
					require.True(t, anyIn(g.ParentsWithEdgeLabel(w, label), phi[u]), "iteration %d: parent rule", i)
				}
			}
		}
	}
}

func anyIn(ids []int, set interface{ Contains(int) bool }) bool {
	for _, id := range ids {
		if set.Contains(id) {
			return true
		}
	}

	return false
}

func BenchmarkMappings(b *testing.B) {
	r := rand.New(rand.NewPCG(1, 2))
	g := randomGraph(b, r, 2000, 8, 0.003)
	q := randomGraph(b, r, 6, 8, 0.3)
	sim, _ := dualsim.New(g, q)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sim.Mappings(false)
	}
}
