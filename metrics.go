package itervote

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeConverged      = "converged"
	outcomeNonConvergence = "non_convergence"
	outcomeCanceled       = "canceled"
)

// newMetrics initialize Prometheus metrics for monitoring the simulator.
// Collectors already registered by another simulator are reused
func newMetrics(simulatorID, namespace string, registerer prometheus.Registerer) (*metrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	z := &metrics{id: simulatorID}
	var err error
	if z.runs, err = register(registerer, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "itervote",
			Name:      "runs_total",
			Help:      "Number of finished simulations",
		},
		[]string{"simulator_id", "mode", "outcome"},
	)); err != nil {
		return nil, err
	}
	if z.voterSteps, err = register(registerer, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "itervote",
			Name:      "voter_steps_total",
			Help:      "Number of voter steps executed",
		},
		[]string{"simulator_id", "mode"},
	)); err != nil {
		return nil, err
	}
	if z.voteChanges, err = register(registerer, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "itervote",
			Name:      "vote_changes_total",
			Help:      "Number of accepted vote changes",
		},
		[]string{"simulator_id", "mode"},
	)); err != nil {
		return nil, err
	}
	if z.eliminations, err = register(registerer, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "itervote",
			Name:      "eliminations_total",
			Help:      "Number of candidates removed by randomized candidate removal",
		},
		[]string{"simulator_id"},
	)); err != nil {
		return nil, err
	}
	if z.cappedRounds, err = register(registerer, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "itervote",
			Name:      "capped_rounds_total",
			Help:      "Number of randomized candidate removal rounds stopped by the pass limit",
		},
		[]string{"simulator_id"},
	)); err != nil {
		return nil, err
	}
	if z.runDuration, err = register(registerer, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "itervote",
		Name:      "run_duration_seconds",
		Help:      "Indicates how much time it took to run a simulation",
	},
		[]string{"simulator_id", "mode"},
	)); err != nil {
		return nil, err
	}
	return z, nil
}

// register registers c or returns the collector already registered
// under the same description
func register[T prometheus.Collector](registerer prometheus.Registerer, c T) (T, error) {
	if err := registerer.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// observeRun records the counters of a finished run
func (m *metrics) observeRun(mode Mode, outcome string, steps, changes int) {
	m.runs.With(prometheus.Labels{"simulator_id": m.id, "mode": string(mode), "outcome": outcome}).Inc()
	m.voterSteps.With(prometheus.Labels{"simulator_id": m.id, "mode": string(mode)}).Add(float64(steps))
	m.voteChanges.With(prometheus.Labels{"simulator_id": m.id, "mode": string(mode)}).Add(float64(changes))
}

// incEliminations increments the eliminated candidates counter
func (m *metrics) incEliminations() {
	m.eliminations.With(prometheus.Labels{"simulator_id": m.id}).Inc()
}

// incCappedRounds increments the capped rounds counter
func (m *metrics) incCappedRounds() {
	m.cappedRounds.With(prometheus.Labels{"simulator_id": m.id}).Inc()
}

// timeSince will set an histogram showing how much time it took to perform the provided run
func (m *metrics) timeSince(mode Mode, start time.Time) {
	elapsed := float64(time.Since(start)) / float64(time.Second)
	m.runDuration.With(prometheus.Labels{"simulator_id": m.id, "mode": string(mode)}).Observe(elapsed)
}
