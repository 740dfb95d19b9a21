package gccengine

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusStatistics is the concrete gcc.StatisticsSink the reference
// engine registers with a prometheus.Registerer, mirroring the teacher's
// SolverMonitor in spirit: every counter is safe for the engine's
// single-threaded propagate loop, with no locking beyond what the
// prometheus client itself does internally.
type PrometheusStatistics struct {
	upperBoundPropagations       prometheus.Counter
	inequalitySetsPropagations   prometheus.Counter
	maxIndependentSetConflicts   prometheus.Counter
	extendedPropagatorsConflicts prometheus.Counter
	equalityPropagations         prometheus.Counter

	avgEqualityVarsInExplanation prometheus.Gauge
	avgExtendedExplanationSize   prometheus.Gauge

	explanationCount       int64
	equalityVarsRunningSum int64
	totalSizeRunningSum    int64
}

// NewPrometheusStatistics creates the metric set and registers it with
// reg. A nil reg skips registration, useful for tests that only want the
// gcc.StatisticsSink behavior without a live registry.
func NewPrometheusStatistics(reg prometheus.Registerer) *PrometheusStatistics {
	s := &PrometheusStatistics{
		upperBoundPropagations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gcc",
			Name:      "upper_bound_propagations_total",
			Help:      "Propagate calls in which the GCC upper-bound propagator removed at least one value.",
		}),
		inequalitySetsPropagations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gcc",
			Name:      "inequality_sets_propagations_total",
			Help:      "Propagate calls in which the GCC inequality-sets propagator removed at least one value.",
		}),
		maxIndependentSetConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gcc",
			Name:      "max_independent_set_conflicts_total",
			Help:      "Conflicts raised by the MIS-bound lower-bound propagator.",
		}),
		extendedPropagatorsConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gcc",
			Name:      "extended_propagators_conflicts_total",
			Help:      "Conflicts raised by the extended-resolution clique/flow propagator.",
		}),
		equalityPropagations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gcc",
			Name:      "equality_propagations_total",
			Help:      "Equality literals assigned true by the Equality propagator.",
		}),
		avgEqualityVarsInExplanation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gcc",
			Name:      "avg_equality_vars_in_explanation",
			Help:      "Running average of equality-literal predicates per extended-conflict explanation.",
		}),
		avgExtendedExplanationSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gcc",
			Name:      "avg_extended_explanation_size",
			Help:      "Running average of total predicate count per extended-conflict explanation.",
		}),
	}
	if reg != nil {
		reg.MustRegister(
			s.upperBoundPropagations,
			s.inequalitySetsPropagations,
			s.maxIndependentSetConflicts,
			s.extendedPropagatorsConflicts,
			s.equalityPropagations,
			s.avgEqualityVarsInExplanation,
			s.avgExtendedExplanationSize,
		)
	}
	return s
}

// IncUpperBoundPropagations implements gcc.StatisticsSink.
func (s *PrometheusStatistics) IncUpperBoundPropagations() { s.upperBoundPropagations.Inc() }

// IncInequalitySetsPropagations implements gcc.StatisticsSink.
func (s *PrometheusStatistics) IncInequalitySetsPropagations() {
	s.inequalitySetsPropagations.Inc()
}

// IncMaxIndependentSetConflicts implements gcc.StatisticsSink.
func (s *PrometheusStatistics) IncMaxIndependentSetConflicts() {
	s.maxIndependentSetConflicts.Inc()
}

// IncExtendedPropagatorsConflicts implements gcc.StatisticsSink.
func (s *PrometheusStatistics) IncExtendedPropagatorsConflicts() {
	s.extendedPropagatorsConflicts.Inc()
}

// IncEqualityPropagations implements gcc.StatisticsSink.
func (s *PrometheusStatistics) IncEqualityPropagations() { s.equalityPropagations.Inc() }

// ObserveExplanation implements gcc.StatisticsSink, folding one
// explanation's shape into the two running averages.
func (s *PrometheusStatistics) ObserveExplanation(equalityVars, totalSize int) {
	s.explanationCount++
	s.equalityVarsRunningSum += int64(equalityVars)
	s.totalSizeRunningSum += int64(totalSize)
	s.avgEqualityVarsInExplanation.Set(float64(s.equalityVarsRunningSum) / float64(s.explanationCount))
	s.avgExtendedExplanationSize.Set(float64(s.totalSizeRunningSum) / float64(s.explanationCount))
}
