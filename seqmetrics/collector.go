// Package seqmetrics exports sequence lifecycle events as Prometheus metrics.
package seqmetrics

import (
	"github.com/jmgilman/go/expected/seq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for the outcome label.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

// Collector is a seq.Observer that records sequence events as metrics.
// Labels never carry sequence IDs, keeping cardinality bounded by the
// number of registered categories.
type Collector struct {
	// Sequences counts finished sequences, by outcome.
	Sequences *prometheus.CounterVec

	// Steps counts step boundaries, by outcome.
	Steps *prometheus.CounterVec

	// Faults counts classified faults, by category name.
	Faults *prometheus.CounterVec

	// Active tracks sequences that have started but not finished.
	Active prometheus.Gauge
}

// Ensure Collector implements seq.Observer.
var _ seq.Observer = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		Sequences: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "expected_sequences_total",
			Help: "Total number of finished sequences, by outcome.",
		}, []string{"outcome"}),
		Steps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "expected_steps_total",
			Help: "Total number of awaited steps, by outcome.",
		}, []string{"outcome"}),
		Faults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "expected_faults_total",
			Help: "Total number of classified faults, by category.",
		}, []string{"category"}),
		Active: factory.NewGauge(prometheus.GaugeOpts{
			Name: "expected_sequences_active",
			Help: "Current number of running sequences.",
		}),
	}
}

// Observe implements seq.Observer.
func (c *Collector) Observe(e seq.Event) {
	switch e.Kind {
	case seq.EventStarted:
		c.Active.Inc()
	case seq.EventStep:
		c.Steps.WithLabelValues(outcome(e.OK)).Inc()
	case seq.EventFault:
		c.Faults.WithLabelValues(e.Code.Category().Name()).Inc()
	case seq.EventFinished:
		c.Active.Dec()
		c.Sequences.WithLabelValues(outcome(e.State == seq.StateSucceeded)).Inc()
	}
}

// Option returns a seq option attaching c to a sequence.
func (c *Collector) Option() seq.Option {
	return seq.WithObserver(c)
}

func outcome(ok bool) string {
	if ok {
		return OutcomeSucceeded
	}
	return OutcomeFailed
}
