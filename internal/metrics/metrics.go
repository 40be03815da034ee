// Package metrics exposes matcher events as prometheus counters.
//
// A Recorder owns its registry so several can coexist (tests, one per CLI
// run). It implements match.Observer and is safe for concurrent use.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvmatch/match"
)

// Recorder counts prune passes, removed candidates, fixpoints, accepted
// bijections and truncated searches, all labelled by engine.
type Recorder struct {
	reg *prometheus.Registry

	prunePasses *prometheus.CounterVec
	removed     *prometheus.CounterVec
	fixpoints   *prometheus.CounterVec
	bijections  *prometheus.CounterVec
	truncated   *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

var _ match.Observer = (*Recorder)(nil)

// NewRecorder registers the lvmatch metrics on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		reg: reg,
		prunePasses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lvmatch_prune_passes_total",
			Help: "Full passes over the query edges made by a prune loop",
		}, []string{"engine"}),
		removed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lvmatch_candidates_removed_total",
			Help: "Candidate data vertices removed by pruning",
		}, []string{"engine"}),
		fixpoints: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lvmatch_fixpoints_total",
			Help: "Prune loops that terminated",
		}, []string{"engine"}),
		bijections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lvmatch_bijections_total",
			Help: "Bijections accepted by an enumerating engine",
		}, []string{"engine"}),
		truncated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lvmatch_truncated_total",
			Help: "Searches stopped at the match limit or on cancellation",
		}, []string{"engine"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvmatch_search_duration_seconds",
			Help:    "Wall time of one match run",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		}, []string{"engine"}),
	}
}

// Registry returns the registry holding the recorder's metrics.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// PrunePass counts one prune pass of engine and the candidates it removed.
func (r *Recorder) PrunePass(engine string, removed int) {
	r.prunePasses.WithLabelValues(engine).Inc()
	r.removed.WithLabelValues(engine).Add(float64(removed))
}

// Fixpoint counts one converged prune loop. The pass count is already
// covered by PrunePass.
func (r *Recorder) Fixpoint(engine string, passes int) {
	r.fixpoints.WithLabelValues(engine).Inc()
}

// Bijection counts one emitted bijection.
func (r *Recorder) Bijection(engine string) {
	r.bijections.WithLabelValues(engine).Inc()
}

// Truncated counts one search that stopped with branches left, at the match
// limit or on cancellation.
func (r *Recorder) Truncated(engine string) {
	r.truncated.WithLabelValues(engine).Inc()
}

// ObserveSearch records the duration of one run of engine.
func (r *Recorder) ObserveSearch(engine string, d time.Duration) {
	r.duration.WithLabelValues(engine).Observe(d.Seconds())
}

// WriteTextfile dumps the registry in the text exposition format, for the
// node_exporter textfile collector. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
