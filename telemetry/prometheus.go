// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package telemetry exports search statistics as Prometheus metrics.
package telemetry

import (
	"errors"

	"github.com/dalzilio/siw"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus is a siw.Sink that records search events in Prometheus
// metrics. It is safe for concurrent use, so the same sink can be shared by
// planners running in different goroutines.
type Prometheus struct {
	expanded  prometheus.Counter
	generated prometheus.Counter
	rate      prometheus.Gauge
	depth     prometheus.Histogram
	runs      *prometheus.CounterVec
	length    prometheus.Histogram
	width     prometheus.Histogram
}

var _ siw.Sink = (*Prometheus)(nil)

// NewPrometheus registers the search metrics on reg. Metric names are prefixed
// with namespace, which is typically "siw".
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		expanded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expanded_nodes_total",
			Help:      "Total number of expanded search nodes",
		}),
		generated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_nodes_total",
			Help:      "Total number of generated search nodes",
		}),
		rate: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation_rate",
			Help:      "Generated nodes per second, averaged since the start of the run",
		}),
		depth: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "expanded_node_depth",
			Help:      "Depth of expanded nodes in their episode",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}),
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total number of runs by result",
		}, []string{"result"}),
		length: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plan_length",
			Help:      "Number of actions in the plans found",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		width: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "segment_width",
			Help:      "Width of the segments of the plans found",
			Buckets:   []float64{0, 1, 2, 3, 4},
		}),
	}
}

// Expanded implements siw.Sink.
func (p *Prometheus) Expanded(g int) {
	p.expanded.Inc()
	p.depth.Observe(float64(g))
}

// Generated implements siw.Sink.
func (p *Prometheus) Generated(int) {
	p.generated.Inc()
}

// Rate implements siw.Sink.
func (p *Prometheus) Rate(_ int, perSecond float64) {
	p.rate.Set(perSecond)
}

// Result records the outcome of a run, as returned by siw.FindPlan.
func (p *Prometheus) Result(plan *siw.Plan, err error) {
	p.runs.WithLabelValues(Result(err)).Inc()
	if err != nil || plan == nil {
		return
	}
	p.length.Observe(float64(plan.Len()))
	for _, w := range plan.Widths() {
		p.width.Observe(float64(w))
	}
}

// Result returns the label used for the outcome of a run.
func Result(err error) string {
	switch {
	case err == nil:
		return "solved"
	case errors.Is(err, siw.ErrDeadEnd):
		return "dead_end"
	case errors.Is(err, siw.ErrWidthCap):
		return "width_cap"
	case errors.Is(err, siw.ErrRuleCycle):
		return "rule_cycle"
	case errors.Is(err, siw.ErrResourceExhausted):
		return "resource_exhausted"
	case errors.Is(err, siw.ErrInterrupted):
		return "interrupted"
	}
	return "error"
}
