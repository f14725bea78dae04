// Package metrics instruments the lattice planner with Prometheus metrics,
// the way upside-down-research-agentic wires github.com/prometheus/client_golang
// around its own scheduling loop: counters and histograms registered once
// and observed at call boundaries, never on the search hot path itself.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Sink receives planner observations. PlannerMetrics is the Prometheus-backed
// default; NopSink discards everything.
type Sink interface {
	ObservePlanDuration(plannerType string, seconds float64)
	AddExpansions(plannerType string, n int)
	SetOpenSetSize(n int)
	AddIncrementalEdits(kind string, n int)
}

// PlannerMetrics is the default Prometheus-backed Sink.
type PlannerMetrics struct {
	planDuration     *prometheus.HistogramVec
	planExpansions   *prometheus.CounterVec
	openSetSize      prometheus.Gauge
	incrementalEdits *prometheus.CounterVec
}

// NewPlannerMetrics registers planner metrics against reg and returns a Sink
// backed by them. Passing prometheus.NewRegistry() isolates the metrics for
// tests; passing prometheus.DefaultRegisterer wires them into the process
// default.
func NewPlannerMetrics(reg prometheus.Registerer) *PlannerMetrics {
	m := &PlannerMetrics{
		planDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lattice",
			Name:      "plan_duration_seconds",
			Help:      "Wall-clock duration of a single Plan call.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"planner"}),
		planExpansions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lattice",
			Name:      "plan_expansions_total",
			Help:      "Nodes popped off the open set across all Plan calls.",
		}, []string{"planner"}),
		openSetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lattice",
			Name:      "plan_open_set_size",
			Help:      "Size of the open set at the end of the most recent Plan call.",
		}),
		incrementalEdits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lattice",
			Name:      "incremental_edits_total",
			Help:      "Edges passed to IncreaseCost/DecreaseCost, labelled by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.planDuration, m.planExpansions, m.openSetSize, m.incrementalEdits)
	return m
}

func (m *PlannerMetrics) ObservePlanDuration(plannerType string, seconds float64) {
	m.planDuration.WithLabelValues(plannerType).Observe(seconds)
}

func (m *PlannerMetrics) AddExpansions(plannerType string, n int) {
	m.planExpansions.WithLabelValues(plannerType).Add(float64(n))
}

func (m *PlannerMetrics) SetOpenSetSize(n int) {
	m.openSetSize.Set(float64(n))
}

func (m *PlannerMetrics) AddIncrementalEdits(kind string, n int) {
	m.incrementalEdits.WithLabelValues(kind).Add(float64(n))
}

// NopSink discards every observation, for callers that don't wire Prometheus.
type NopSink struct{}

func (NopSink) ObservePlanDuration(string, float64) {}
func (NopSink) AddExpansions(string, int)           {}
func (NopSink) SetOpenSetSize(int)                  {}
func (NopSink) AddIncrementalEdits(string, int)     {}
