package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/builder"
	"github.com/katalvlaran/lvmatch/dualiso"
)

func TestDeterministicShapes(t *testing.T) {
	tests := []struct {
		name     string
		ctor     builder.Constructor
		wantV    int
		wantE    int
		children [][]int
	}{
		{"Path", builder.Path(1, 2, 3), 3, 2, [][]int{{1}, {2}, {}}},
		{"Path1", builder.Path(7), 1, 0, [][]int{{}}},
		{"Cycle", builder.Cycle(1, 1, 1), 3, 3, [][]int{{1}, {2}, {0}}},
		{"SelfLoop", builder.Cycle(4), 1, 1, [][]int{{0}}},
		{"Star", builder.Star(0, 1, 4), 4, 3, [][]int{{1, 2, 3}, {}, {}, {}}},
		{"Complete", builder.Complete(1, 2, 3), 3, 6, [][]int{{1, 2}, {0, 2}, {0, 1}}},
		{"Complete1", builder.Complete(5), 1, 0, [][]int{{}}},
		{"Bipartite", builder.CompleteBipartite(2, 2, 0, 1), 4, 4, [][]int{{2, 3}, {2, 3}, {}, {}}},
		{"Grid", builder.Grid(2, 2, 0), 4, 4, [][]int{{1, 2}, {3}, {3}, {}}},
		{"GridRow", builder.Grid(1, 3, 0), 3, 2, [][]int{{1}, {2}, {}}},
		{"Wheel", builder.Wheel(9, 1, 4), 4, 6, [][]int{{1}, {2}, {0}, {0, 1, 2}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.Size())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for v, ch := range tc.children {
				if len(ch) == 0 {
					assert.Empty(t, g.Children(v))
					continue
				}
				assert.Equal(t, ch, g.Children(v))
			}
		})
	}
}

func TestBuildGraph_Composition(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithName("two"), builder.WithInverseAdjacency()},
		builder.Path(10, 11),
		builder.Cycle(12, 13),
	)
	require.NoError(t, err)

	assert.Equal(t, "two", g.Name())
	assert.Equal(t, []int{10, 11, 12, 13}, g.Labels())
	assert.Equal(t, []int{3}, g.Children(2))
	assert.Equal(t, []int{2}, g.Children(3))
	assert.True(t, g.HasInverseAdjacency())
	assert.Equal(t, []int{0}, g.Parents(1))
}

func TestBuildGraph_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{"empty path", nil, builder.Path(), builder.ErrTooFewVertices},
		{"tiny star", nil, builder.Star(0, 0, 1), builder.ErrTooFewVertices},
		{"bad probability", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(4, 1, 1.5), builder.ErrInvalidProbability},
		{"no rng", nil, builder.RandomSparse(4, 2, 0.5), builder.ErrNeedRandSource},
		{"no rng labeled", nil, builder.RandomLabeled(4, 1, 1), builder.ErrNeedRandSource},
		{"dense degree", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomLabeled(4, 1, 3.5), builder.ErrInvalidDegree},
		{"zero labels", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomLabeled(4, 0, 1), builder.ErrTooFewVertices},
		{"empty complete", nil, builder.Complete(), builder.ErrTooFewVertices},
		{"empty side", nil, builder.CompleteBipartite(0, 3, 0, 1), builder.ErrTooFewVertices},
		{"flat grid", nil, builder.Grid(0, 3, 0), builder.ErrTooFewVertices},
		{"tiny wheel", nil, builder.Wheel(0, 1, 3), builder.ErrTooFewVertices},
		{"regular no rng", nil, builder.RandomRegular(5, 1, 2), builder.ErrNeedRandSource},
		{"regular degree too high", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(5, 1, 5), builder.ErrInvalidDegree},
		{"regular negative degree", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(5, 1, -1), builder.ErrInvalidDegree},
		{"regular empty", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(0, 1, 0), builder.ErrTooFewVertices},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptions_PanicOnMeaninglessValues(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithEdgeLabels(0) })
}

func TestRandomSparse_Extremes(t *testing.T) {
	full, err := builder.BuildGraph(nil, builder.RandomSparse(4, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 12, full.EdgeCount())

	none, err := builder.BuildGraph(nil, builder.RandomSparse(4, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, none.EdgeCount())
}

func TestRandomLabeled(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithEdgeLabels(3)}
	g, err := builder.BuildGraph(opts, builder.RandomLabeled(200, 5, 2.5))
	require.NoError(t, err)

	assert.Equal(t, 200, g.Size())
	assert.Equal(t, 500, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.NotEqual(t, e.From, e.To)
		assert.GreaterOrEqual(t, g.EdgeLabel(e.From, e.To), 0)
		assert.Less(t, g.EdgeLabel(e.From, e.To), 3)
	}
	for _, l := range g.Labels() {
		assert.True(t, l >= 0 && l < 5)
	}

	again, err := builder.BuildGraph(opts, builder.RandomLabeled(200, 5, 2.5))
	require.NoError(t, err)
	assert.True(t, g.Equal(again), "same seed must give the same graph")
}

func TestRandomRegular(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(3), builder.WithEdgeLabels(2)}
	g, err := builder.BuildGraph(opts, builder.RandomRegular(50, 4, 3))
	require.NoError(t, err)

	assert.Equal(t, 50, g.Size())
	assert.Equal(t, 150, g.EdgeCount())
	for v := 0; v < g.Size(); v++ {
		ch := g.Children(v)
		assert.Len(t, ch, 3, "vertex %d", v)
		assert.NotContains(t, ch, v)
	}

	again, err := builder.BuildGraph(opts, builder.RandomRegular(50, 4, 3))
	require.NoError(t, err)
	assert.True(t, g.Equal(again), "same seed must give the same graph")

	// d = n-1 leaves no choice: the complete digraph.
	full, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(9)}, builder.RandomRegular(5, 1, 4))
	require.NoError(t, err)
	assert.Equal(t, 20, full.EdgeCount())
}

func TestComplete_AllInjectiveMappings(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(1, 1, 1, 1))
	require.NoError(t, err)
	q, err := builder.BuildGraph(nil, builder.Complete(1, 1, 1))
	require.NoError(t, err)

	iso, err := dualiso.New(g, q)
	require.NoError(t, err)
	res, err := iso.Bijections()
	require.NoError(t, err)
	assert.Len(t, res.Bijections, 24)
}

func TestExtractQuery_HasMatch(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7), builder.WithEdgeLabels(2)},
		builder.RandomLabeled(60, 3, 2))
	require.NoError(t, err)

	for seed := int64(0); seed < 10; seed++ {
		q, orig, err := builder.ExtractQuery(g, 4, builder.WithSeed(seed), builder.WithName("q"))
		require.NoError(t, err)
		require.Equal(t, 4, q.Size())
		assert.Equal(t, "q", q.Name())
		for u := 0; u < q.Size(); u++ {
			assert.Equal(t, g.Label(orig[u]), q.Label(u))
		}

		iso, err := dualiso.New(g, q)
		require.NoError(t, err)
		res, err := iso.Bijections()
		require.NoError(t, err)
		assert.Contains(t, res.Bijections, orig, "seed %d", seed)
	}
}

func TestExtractQuery_Errors(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(1, 2), builder.Path(3, 4))
	require.NoError(t, err)

	_, _, err = builder.ExtractQuery(g, 3, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, _, err = builder.ExtractQuery(g, 9, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, _, err = builder.ExtractQuery(g, 2)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, _, err = builder.ExtractQuery[int](nil, 2, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestDraft_AddEdge(t *testing.T) {
	d := &builder.Draft{}
	a, b := d.AddVertex(1), d.AddVertex(2)

	added, err := d.AddEdge(a, b, 5)
	require.NoError(t, err)
	assert.True(t, added)
	added, err = d.AddEdge(a, b, 6)
	require.NoError(t, err)
	assert.False(t, added)
	assert.True(t, d.HasEdge(a, b))

	_, err = d.AddEdge(a, 9, 0)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func ExampleBuildGraph() {
	g, _ := builder.BuildGraph(nil, builder.Path(10, 11, 11))
	fmt.Println(g.Size(), g.EdgeCount(), g.Children(0))
	// Output: 3 2 [1]
}
