package itervote

import (
	"math/rand/v2"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

const (
	// maxPasses is the default number of full passes over the voters
	// a convergence loop may run before giving up
	maxPasses uint = 1000
)

// Mode is the kind of election to simulate or score
type Mode string

const (
	// ModeIterative runs best response dynamics until convergence
	ModeIterative Mode = "iterative"

	// ModeRCR runs best response dynamics with randomized candidate removal
	ModeRCR Mode = "rcr"

	// ModePlurality scores first preferences
	ModePlurality Mode = "plurality"

	// ModeBorda scores with the Borda count
	ModeBorda Mode = "borda"

	// ModeCondorcet returns the weak Condorcet winners
	ModeCondorcet Mode = "condorcet"
)

// Options holds config that will be modified by users
type Options struct {
	// ID of the simulator. Used in logs and as metrics label.
	// A uuid is generated when empty
	ID string

	// Logger expose zerolog so it can be override
	Logger *zerolog.Logger

	// TieBreak is the rule used to pick winners and losers among tied candidates.
	// Default to Lexicographical
	TieBreak TieBreak

	// MaxPasses bounds each convergence loop to MaxPasses full passes
	// over the voters. Default to 1000
	MaxPasses uint

	// Seed is used to build the random source when Rand is nil.
	// When both are empty, a random seed is used
	Seed uint64

	// Rand is the random source used by random tiebreaks,
	// random initial votes and forced re-votes
	Rand *rand.Rand

	// MetricsNamespacePrefix is the namespace to use for all itervote metrics.
	// When set, the full metric name will be `<MetricsNamespacePrefix>_itervote_<metric_name>`.
	// Otherwise it will be `itervote_<metric_name>`.
	MetricsNamespacePrefix string

	// MetricsRegisterer is where metrics are registered.
	// Default to prometheus.DefaultRegisterer
	MetricsRegisterer prometheus.Registerer
}

// Simulator runs iterative plurality elections
type Simulator struct {
	// Logger expose zerolog so it can be override
	Logger *zerolog.Logger

	// options are configuration options
	options Options

	// id of the simulator
	id string

	// rand is the random source of every run.
	rand *rand.Rand
	// randMu serializes access to rand. It is held for a whole run
	// so a seeded simulator always replays the same way
	randMu sync.Mutex

	// metrics holds all prometheus metrics for the simulator
	metrics *metrics
}

// Election is the input of a simulation
type Election struct {
	// Profiles holds one strict ranking of the candidates per voter,
	// most preferred first
	Profiles [][]int

	// Candidates is the number of candidates m. Candidates are 0..m-1
	Candidates int

	// Truthful makes every voter start by voting for its first preference
	Truthful bool

	// InitialVotes is the starting vote of each voter.
	// Only used when Truthful is false. When nil and Truthful is false,
	// each voter starts with a uniformly random candidate
	InitialVotes []int
}

// Result is the converged state of a simulation
type Result struct {
	// RunID identifies the run in logs
	RunID string

	// Votes is the final vote of each voter
	Votes []int

	// Counts is the final number of votes per candidate
	Counts []int

	// Winner is the plurality winner of Counts
	Winner int

	// Steps is the number of voter steps executed.
	// For iterative runs, the n unchanged steps detecting convergence are not counted.
	// For RCR runs, it is the total over all rounds
	Steps int

	// Changes is the number of accepted vote changes, forced re-votes included
	Changes int

	// Passes is the number of passes over the voters that were started
	Passes int

	// Rounds is the number of RCR settle rounds
	Rounds int

	// CappedRounds is the number of RCR rounds that hit MaxPasses
	// before converging
	CappedRounds int

	// Eliminated holds RCR eliminated candidates in elimination order
	Eliminated []int
}
