package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/labeled"
	"github.com/katalvlaran/lvmatch/match"
)

func dataGraph(t *testing.T) *labeled.Graph[int] {
	t.Helper()
	g, err := labeled.New(
		[][]int{{1, 3}, {2}, {}, {}, {2}, {4}},
		[]int{10, 11, 11, 11, 11, 10},
		map[labeled.Edge]int{{From: 5, To: 4}: -2},
		labeled.WithDefaultEdgeLabel(-1),
	)
	require.NoError(t, err)

	return g
}

func queryGraph(t *testing.T) *labeled.Graph[int] {
	t.Helper()
	q, err := labeled.New([][]int{{1}, {2}, {}}, []int{10, 11, 11}, nil, labeled.WithDefaultEdgeLabel(-1))
	require.NoError(t, err)

	return q
}

func TestFeasibleMates_ByLabel(t *testing.T) {
	g, q := dataGraph(t), queryGraph(t)

	phi := match.FeasibleMates(g, q)
	assert.Equal(t, [][]int{{0, 5}, {1, 2, 3, 4}, {1, 2, 3, 4}}, phi.Slices())

	// fresh sets: mutating one leaves the next call untouched
	phi[0].Delete(0)
	assert.Equal(t, []int{0, 5}, match.FeasibleMates(g, q)[0].Keys())
}

func TestFeasibleMates_UnknownLabel(t *testing.T) {
	g := dataGraph(t)
	q, err := labeled.New([][]int{{}}, []int{99}, nil)
	require.NoError(t, err)

	phi := match.FeasibleMates(g, q)
	assert.True(t, phi.AnyEmpty())
}

func TestCandidates_Helpers(t *testing.T) {
	a := match.FromSlices([][]int{{3, 1}, {2}})
	b := match.FromSlices([][]int{{1, 3, 5}, {2, 4}})

	assert.Equal(t, []int{2, 1}, a.Sizes())
	assert.Equal(t, 3, a.Total())
	assert.Equal(t, []int{1, 2, 3}, a.Union())
	assert.True(t, a.SubsetOf(b))
	assert.False(t, b.SubsetOf(a))
	assert.False(t, a.Equal(b))
	assert.False(t, a.AnyEmpty())
	assert.Equal(t, "0: [1 3] 1: [2]", a.String())

	c := a.Clone()
	assert.True(t, c.Equal(a))
	c[0].Delete(1)
	assert.Equal(t, []int{1, 3}, a[0].Keys(), "clone must not alias")
	assert.Equal(t, []int{3}, c[0].Keys())

	assert.True(t, match.NewCandidates(2).AnyEmpty())
	assert.False(t, match.NewCandidates(0).AnyEmpty())
}

func TestCountMatches(t *testing.T) {
	g, q := dataGraph(t), queryGraph(t)

	// graph simulation fixpoint of the fixture
	sim := match.FromSlices([][]int{{0}, {1, 4}, {1, 2, 3, 4}})
	assert.Equal(t, match.Coverage{Vertices: 5, Edges: 3}, match.CountMatches(g, q, sim, false))

	// dual simulation fixpoint
	dual := match.FromSlices([][]int{{0}, {1}, {2}})
	assert.Equal(t, match.Coverage{Vertices: 3, Edges: 2}, match.CountMatches(g, q, dual, false))

	// 5→4 is labeled -2 and only counts when labels are ignored
	loose := match.FromSlices([][]int{{0, 5}, {1, 4}, {2}})
	assert.Equal(t, 3, match.CountMatches(g, q, loose, false).Edges)
	assert.Equal(t, 4, match.CountMatches(g, q, loose, true).Edges)
}

func TestFilterDataGraph(t *testing.T) {
	g, q := dataGraph(t), queryGraph(t)

	sim := match.FromSlices([][]int{{0}, {1, 4}, {1, 2, 3, 4}})
	f, orig := match.FilterDataGraph(g, q, sim, false)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, orig)
	assert.Equal(t, 5, f.Size())
	assert.Equal(t, 3, f.EdgeCount())
	assert.Equal(t, []int{1}, f.Children(0))
	assert.Empty(t, f.Children(3))
	assert.Equal(t, []int{2}, f.Children(4))
	assert.Equal(t, -1, f.EdgeLabel(4, 2))
	assert.Equal(t, []int{10, 11, 11, 11, 11}, f.Labels())

	ok, msg := f.ValidateEdges()
	assert.True(t, ok, msg)
	ok, msg = f.ValidateEdgeLabels()
	assert.True(t, ok, msg)
}

func TestFilterDataGraph_CompactIDs(t *testing.T) {
	g, q := dataGraph(t), queryGraph(t)

	loose := match.FromSlices([][]int{{5}, {4}, {2}})
	f, orig := match.FilterDataGraph(g, q, loose, true)

	require.Equal(t, []int{2, 4, 5}, orig)
	// 5→4→2 becomes 2→1→0
	assert.Equal(t, []int{1}, f.Children(2))
	assert.Equal(t, []int{0}, f.Children(1))
	assert.Equal(t, -2, f.EdgeLabel(2, 1))
}

func TestNewBase_NilGraph(t *testing.T) {
	_, err := match.NewBase[int](nil, queryGraph(t))
	assert.ErrorIs(t, err, match.ErrGraphNil)
}
