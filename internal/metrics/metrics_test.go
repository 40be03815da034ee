package metrics

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/dualiso"
	"github.com/katalvlaran/lvmatch/graphsim"
	"github.com/katalvlaran/lvmatch/labeled"
	"github.com/katalvlaran/lvmatch/match"
)

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder()
	r.PrunePass("graphsim", 3)
	r.PrunePass("graphsim", 0)
	r.Fixpoint("graphsim", 2)
	r.Bijection("dualiso")
	r.Truncated("dualiso")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.prunePasses.WithLabelValues("graphsim")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.removed.WithLabelValues("graphsim")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.fixpoints.WithLabelValues("graphsim")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.bijections.WithLabelValues("dualiso")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.truncated.WithLabelValues("dualiso")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.bijections.WithLabelValues("graphsim")))
}

func TestRecorder_Concurrent(t *testing.T) {
	r := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Bijection("dualiso")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800.0, testutil.ToFloat64(r.bijections.WithLabelValues("dualiso")))
}

func fixture() (*labeled.Graph[int], *labeled.Graph[int]) {
	g := labeled.MustNew(
		[][]int{{1, 3}, {2}, {}, {}, {2}, {4}},
		[]int{10, 11, 11, 11, 11, 10},
		map[labeled.Edge]int{{From: 5, To: 4}: 7},
		labeled.WithInverseAdjacency(),
	)
	q := labeled.MustNew([][]int{{1}, {2}, {}}, []int{10, 11, 11}, nil, labeled.WithInverseAdjacency())

	return g, q
}

func TestRecorder_AsObserver(t *testing.T) {
	g, q := fixture()
	r := NewRecorder()

	sim, err := graphsim.New(g, q, match.WithObserver(r))
	require.NoError(t, err)
	sim.Mappings(false)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.fixpoints.WithLabelValues(graphsim.Engine)))
	assert.GreaterOrEqual(t, testutil.ToFloat64(r.prunePasses.WithLabelValues(graphsim.Engine)), 1.0)

	iso, err := dualiso.New(g, q, dualiso.WithObserver(r))
	require.NoError(t, err)
	res, err := iso.Bijections()
	require.NoError(t, err)
	assert.Equal(t, float64(len(res.Bijections)), testutil.ToFloat64(r.bijections.WithLabelValues(dualiso.Engine)))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.Bijection("dualiso")
	r.ObserveSearch("dualiso", 20*time.Millisecond)

	path := filepath.Join(t.TempDir(), "lvmatch.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `lvmatch_bijections_total{engine="dualiso"} 1`)
	assert.Contains(t, string(data), "lvmatch_search_duration_seconds_count")
}
