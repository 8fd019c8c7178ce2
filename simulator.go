package itervote

import (
	"fmt"
	"math/rand/v2"

	"github.com/Lord-Y/itervote/logger"
	"github.com/google/uuid"
)

// NewSimulator returns a simulator configured with options.
// Zero values are replaced by their defaults
func NewSimulator(options Options) (*Simulator, error) {
	if options.TieBreak.String() == "unknown" {
		return nil, fmt.Errorf("%w %d", ErrUnknownTieBreak, options.TieBreak)
	}

	if options.ID == "" {
		options.ID = uuid.NewString()
	}

	if options.Logger == nil {
		options.Logger = logger.NewLogger()
	}

	if options.MaxPasses == 0 {
		options.MaxPasses = maxPasses
	}

	if options.Rand == nil {
		seed := options.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		options.Rand = rand.New(rand.NewPCG(seed, seed))
	}

	m, err := newMetrics(options.ID, options.MetricsNamespacePrefix, options.MetricsRegisterer)
	if err != nil {
		return nil, fmt.Errorf("fail to register metrics: %w", err)
	}

	return &Simulator{
		Logger:  options.Logger,
		options: options,
		id:      options.ID,
		rand:    options.Rand,
		metrics: m,
	}, nil
}

// ID returns the simulator id
func (s *Simulator) ID() string {
	return s.id
}

// TieBreak returns the tiebreak used by the simulator
func (s *Simulator) TieBreak() TieBreak {
	return s.options.TieBreak
}

// PluralityWinner returns the single plurality winner,
// ties being resolved with the simulator tiebreak
func (s *Simulator) PluralityWinner(profiles [][]int, m int) (int, error) {
	scores, err := Plurality(profiles, m)
	if err != nil {
		return 0, err
	}

	s.randMu.Lock()
	defer s.randMu.Unlock()
	return Select(scores.Counts, s.options.TieBreak, Max, s.rand)
}
