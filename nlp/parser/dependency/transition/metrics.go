package transition

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OUTCOME_DONE       = "done"
	OUTCOME_UNPARSABLE = "unparsable"
	OUTCOME_ERROR      = "error"
)

// Metrics counts generated oracle sequences per system. A nil *Metrics
// records nothing.
type Metrics struct {
	// Sequences is labeled by system and outcome
	Sequences *prometheus.CounterVec
	// Transitions is the length of derived sequences, labeled by system
	Transitions *prometheus.HistogramVec
	// Explored counts transitions taken outside the gold set
	Explored *prometheus.CounterVec
}

// NewMetrics registers the oracle metrics on reg; a nil reg leaves them
// unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Sequences: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "deporacle",
			Subsystem: "oracle",
			Name:      "sequences_total",
			Help:      "Oracle sequences generated, by outcome",
		}, []string{"system", "outcome"}),
		Transitions: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "deporacle",
			Subsystem: "oracle",
			Name:      "sequence_transitions",
			Help:      "Number of transitions per oracle sequence",
			Buckets:   prometheus.ExponentialBuckets(4, 2, 10),
		}, []string{"system"}),
		Explored: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "deporacle",
			Subsystem: "oracle",
			Name:      "explored_transitions_total",
			Help:      "Transitions taken that were not gold",
		}, []string{"system"}),
	}
}

// Observe records the outcome of one Oracle.Sequence call.
func (m *Metrics) Observe(system string, seq *OracleSequence, err error) {
	if m == nil {
		return
	}
	var unparsable *UnparsableTree
	switch {
	case err == nil:
		m.Sequences.WithLabelValues(system, OUTCOME_DONE).Inc()
		m.Transitions.WithLabelValues(system).Observe(float64(seq.Len()))
		m.Explored.WithLabelValues(system).Add(float64(seq.Explored()))
	case errors.As(err, &unparsable):
		m.Sequences.WithLabelValues(system, OUTCOME_UNPARSABLE).Inc()
	default:
		m.Sequences.WithLabelValues(system, OUTCOME_ERROR).Inc()
	}
}
