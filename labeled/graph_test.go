package labeled_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/labeled"
)

// fixtureGraph is the six-vertex data graph used across the matcher tests:
//
//	0(10) → 1(11) → 2(11) ← 4(11) ← 5(10)
//	0(10) → 3(11)
//
// Every edge is labeled -1 except 5→4, labeled -2.
func fixtureGraph(t *testing.T, opts ...labeled.GraphOption) *labeled.Graph[int] {
	t.Helper()
	g, err := labeled.New(
		[][]int{{1, 3}, {2}, {}, {}, {2}, {4}},
		[]int{10, 11, 11, 11, 11, 10},
		map[labeled.Edge]int{{From: 5, To: 4}: -2},
		append([]labeled.GraphOption{labeled.WithDefaultEdgeLabel(-1)}, opts...)...,
	)
	require.NoError(t, err)

	return g
}

func TestNew_Accessors(t *testing.T) {
	g := fixtureGraph(t, labeled.WithName("fixture"))

	assert.Equal(t, "fixture", g.Name())
	assert.Equal(t, 6, g.Size())
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, []int{1, 3}, g.Children(0))
	assert.Empty(t, g.Children(2))
	assert.Equal(t, 10, g.Label(5))
	assert.Equal(t, []int{10, 11, 11, 11, 11, 10}, g.Labels())

	assert.True(t, g.HasEdge(0, 3))
	assert.False(t, g.HasEdge(3, 0))
	assert.False(t, g.HasEdge(-1, 0))
	assert.Equal(t, -1, g.EdgeLabel(0, 1))
	assert.Equal(t, -2, g.EdgeLabel(5, 4))

	l, ok := g.LookupEdgeLabel(4, 2)
	assert.True(t, ok)
	assert.Equal(t, -1, l)
	_, ok = g.LookupEdgeLabel(2, 4)
	assert.False(t, ok)
}

func TestNew_SortsAndDeduplicatesChildren(t *testing.T) {
	g, err := labeled.New([][]int{{2, 1, 2}, {}, {}}, []string{"a", "b", "c"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, g.Children(0))
	assert.Equal(t, 2, g.EdgeCount())
	// Unlabeled edges carry the zero label.
	assert.Equal(t, "", g.EdgeLabel(0, 2))
}

func TestNew_RejectsInvalidInput(t *testing.T) {
	_, err := labeled.New([][]int{{1}}, []int{1, 2}, nil)
	assert.ErrorIs(t, err, labeled.ErrInvalidGraph)

	_, err = labeled.New([][]int{{5}, {}}, []int{1, 2}, nil)
	assert.ErrorIs(t, err, labeled.ErrInvalidGraph)
	assert.Contains(t, err.Error(), "out-of-range child 5")

	_, err = labeled.New([][]int{{1}, {}}, []int{1, 2}, map[labeled.Edge]int{{From: 1, To: 0}: 7})
	assert.ErrorIs(t, err, labeled.ErrInvalidGraph)
	assert.Contains(t, err.Error(), "(1, 0)")
}

func TestNew_RejectsMistypedDefaultEdgeLabel(t *testing.T) {
	children := [][]int{{1}, {}}
	labels := []int64{1, 2}

	// -1 infers int, not int64
	_, err := labeled.New(children, labels, nil, labeled.WithDefaultEdgeLabel(-1))
	assert.ErrorIs(t, err, labeled.ErrInvalidGraph)
	assert.Contains(t, err.Error(), "int64")

	g, err := labeled.New(children, labels, nil, labeled.WithDefaultEdgeLabel[int64](-1))
	require.NoError(t, err)
	assert.Equal(t, int64(-1), g.EdgeLabel(0, 1))

	_, err = labeled.New([][]int{{}}, []string{"a"}, nil, labeled.WithDefaultEdgeLabel(0))
	assert.ErrorIs(t, err, labeled.ErrInvalidGraph)
}

func TestValidate_ReportsFirstViolation(t *testing.T) {
	g, err := labeled.New(
		[][]int{{1}, {9, 7}, {-1}},
		[]int{0, 0, 0},
		map[labeled.Edge]int{{From: 2, To: 0}: 1, {From: 0, To: 2}: 1},
		labeled.WithoutValidation(),
	)
	require.NoError(t, err)

	ok, msg := g.ValidateEdges()
	assert.False(t, ok)
	assert.Equal(t, "vertex 1 has out-of-range child 7 (size 3)", msg)

	ok, msg = g.ValidateEdgeLabels()
	assert.False(t, ok)
	assert.Equal(t, "edge label on (0, 2) has no adjacency entry", msg)

	ok, msg = fixtureGraph(t).ValidateEdges()
	assert.True(t, ok)
	assert.Empty(t, msg)
}

func TestEdgeLabelFilters(t *testing.T) {
	g, err := labeled.New(
		[][]int{{1, 2, 3}, {3}, {3}, {}},
		[]int{0, 0, 0, 0},
		map[labeled.Edge]int{
			{From: 0, To: 1}: 1, {From: 0, To: 2}: 2, {From: 0, To: 3}: 1,
			{From: 1, To: 3}: 2, {From: 2, To: 3}: 2,
		},
	)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, g.ChildrenWithEdgeLabel(0, 1))
	assert.Equal(t, []int{2}, g.ChildrenWithEdgeLabel(0, 2))
	assert.Empty(t, g.ChildrenWithEdgeLabel(0, 9))

	g.BuildInverseAdjacency()
	assert.Equal(t, []int{1, 2}, g.ParentsWithEdgeLabel(3, 2))
	assert.Equal(t, []int{0}, g.ParentsWithEdgeLabel(3, 1))
}

func TestLabelIndex(t *testing.T) {
	g := fixtureGraph(t)

	assert.Equal(t, []int{0, 5}, g.LabelIndex(10))
	assert.Equal(t, []int{1, 2, 3, 4}, g.LabelIndex(11))
	assert.Empty(t, g.LabelIndex(12))
	assert.Equal(t, []int{10, 11}, g.DistinctLabels())

	// LabelIndex hands out copies.
	ids := g.LabelIndex(10)
	ids[0] = 99
	assert.Equal(t, []int{0, 5}, g.LabelIndex(10))
}

func TestContractViolationsPanic(t *testing.T) {
	g := fixtureGraph(t)

	assert.PanicsWithError(t, "labeled: not an edge: (2, 0)", func() { g.EdgeLabel(2, 0) })
	assert.Panics(t, func() { g.Children(6) })
	assert.Panics(t, func() { g.Label(-1) })
	assert.Panics(t, func() { g.Parents(0) })
	assert.Panics(t, func() { g.ParentsWithEdgeLabel(2, -1) })
}

func TestEdges_SortedAndCopied(t *testing.T) {
	g := fixtureGraph(t)

	assert.Equal(t, []labeled.Edge{
		{From: 0, To: 1}, {From: 0, To: 3}, {From: 1, To: 2}, {From: 4, To: 2}, {From: 5, To: 4},
	}, g.Edges())

	m := g.EdgeLabels()
	m[labeled.Edge{From: 0, To: 1}] = 42
	assert.Equal(t, -1, g.EdgeLabel(0, 1))
}
