package itervote

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds Prometheus metrics for monitoring the simulator.
type metrics struct {
	// id is the simulator ID used as a label for the metrics
	id string

	// runs is a counter of finished runs per mode and outcome
	runs *prometheus.CounterVec

	// voterSteps is a counter of voter steps executed per mode
	voterSteps *prometheus.CounterVec

	// voteChanges is a counter of accepted vote changes per mode
	voteChanges *prometheus.CounterVec

	// eliminations is a counter of candidates removed by RCR
	eliminations *prometheus.CounterVec

	// cappedRounds is a counter of RCR rounds that hit the pass limit
	cappedRounds *prometheus.CounterVec

	// runDuration is an histogram that indicates how much time it took to run a simulation
	runDuration *prometheus.HistogramVec
}
