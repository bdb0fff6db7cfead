// Package bvhmetrics exposes a Tree's quality and activity as Prometheus
// collectors, following the registry-per-instance pattern used by the
// corpus's observability packages (e.g. Sumatoshi-tech/codefang's
// internal/observability/prometheus.go) rather than registering against
// the global default registry.
package bvhmetrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/foldedspace/bvh2d"
)

// Recorder wraps a *bvh.Tree with Prometheus collectors: a gauge tracking
// Quality(), and counters for each mutating operation. Callers increment
// the counters themselves at the call site (the core tree never imports
// this package, keeping the hot paths free of metrics overhead) by using
// the Observe* helpers below.
type Recorder struct {
	tree *bvh.Tree

	quality  prometheus.GaugeFunc
	inserts  prometheus.Counter
	removes  prometheus.Counter
	moves    prometheus.Counter
	optimize prometheus.Counter
	capacity prometheus.Gauge

	registry *prometheus.Registry
}

// NewRecorder builds a Recorder with its own private registry, named using
// the given subsystem prefix (e.g. "broadphase").
func NewRecorder(tree *bvh.Tree, subsystem string) *Recorder {
	r := &Recorder{
		tree:     tree,
		registry: prometheus.NewRegistry(),
	}

	r.quality = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "bvh",
		Subsystem: subsystem,
		Name:      "quality",
		Help:      "Sum of interior (non-root) node AABB areas.",
	}, func() float64 { return r.tree.Quality() })

	r.inserts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bvh", Subsystem: subsystem, Name: "inserts_total",
		Help: "Number of Insert calls.",
	})
	r.removes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bvh", Subsystem: subsystem, Name: "removes_total",
		Help: "Number of Remove calls.",
	})
	r.moves = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bvh", Subsystem: subsystem, Name: "moves_total",
		Help: "Number of Move calls.",
	})
	r.optimize = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bvh", Subsystem: subsystem, Name: "optimize_total",
		Help: "Number of Optimize passes.",
	})
	r.capacity = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "bvh", Subsystem: subsystem, Name: "capacity",
		Help: "Fixed arena capacity.",
	})
	r.capacity.Set(float64(tree.Capacity()))

	r.registry.MustRegister(r.quality, r.inserts, r.removes, r.moves, r.optimize, r.capacity)
	return r
}

// ObserveInsert, ObserveRemove, ObserveMove and ObserveOptimize record one
// occurrence of the corresponding tree operation. Call these at the same
// call site that calls the matching *bvh.Tree method.
func (r *Recorder) ObserveInsert()   { r.inserts.Inc() }
func (r *Recorder) ObserveRemove()   { r.removes.Inc() }
func (r *Recorder) ObserveMove()     { r.moves.Inc() }
func (r *Recorder) ObserveOptimize() { r.optimize.Inc() }

// Handler returns an http.Handler serving this Recorder's registry at a
// /metrics-style scrape endpoint.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
