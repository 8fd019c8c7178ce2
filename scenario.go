package itervote

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario models a yaml election file
type Scenario struct {
	// Candidates is the number of candidates
	Candidates int `yaml:"candidates"`

	// Mode is the election to run. Default to iterative
	Mode Mode `yaml:"mode"`

	// TieBreak is lexicographical or random
	TieBreak string `yaml:"tiebreak"`

	// Truthful makes voters start with their first preference
	Truthful bool `yaml:"truthful"`

	// Seed of the random source
	Seed uint64 `yaml:"seed"`

	// MaxPasses bounds each convergence loop
	MaxPasses uint `yaml:"max_passes"`

	// InitialVotes is the optional starting vote of each voter
	InitialVotes []int `yaml:"initial_votes,omitempty"`

	// Profiles holds the preference profile of each voter
	Profiles [][]int `yaml:"profiles"`
}

// Outcome is the result of a scenario
type Outcome struct {
	// Mode that has been run
	Mode Mode

	// Result is only set by iterative and rcr modes
	Result *Result

	// Scores holds plurality first preference counts or Borda points
	Scores []int

	// Winners holds the winning candidates
	Winners []int
}

// LoadScenario reads and parses the yaml scenario at path
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fail to read scenario %s: %w", path, err)
	}
	return ParseScenario(data)
}

// ParseScenario parses a yaml scenario and validates its content
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("fail to parse scenario: %w", err)
	}
	if sc.Mode == "" {
		sc.Mode = ModeIterative
	}

	switch sc.Mode {
	case ModeIterative, ModeRCR, ModePlurality, ModeBorda, ModeCondorcet:
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, sc.Mode)
	}
	if _, err := ParseTieBreak(sc.TieBreak); err != nil {
		return nil, err
	}
	if err := ValidateProfiles(sc.Profiles, sc.Candidates); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Options merges the scenario settings into base
func (sc *Scenario) Options(base Options) (Options, error) {
	tiebreak, err := ParseTieBreak(sc.TieBreak)
	if err != nil {
		return base, err
	}
	base.TieBreak = tiebreak
	if sc.Seed != 0 {
		base.Seed = sc.Seed
		base.Rand = nil
	}
	if sc.MaxPasses != 0 {
		base.MaxPasses = sc.MaxPasses
	}
	return base, nil
}

// Election returns the election described by the scenario
func (sc *Scenario) Election() Election {
	return Election{
		Profiles:     sc.Profiles,
		Candidates:   sc.Candidates,
		Truthful:     sc.Truthful,
		InitialVotes: sc.InitialVotes,
	}
}

// RunScenario runs the scenario election with the simulator settings.
// Use Scenario.Options to build a simulator from the scenario settings
func (s *Simulator) RunScenario(ctx context.Context, sc *Scenario) (*Outcome, error) {
	outcome := &Outcome{Mode: sc.Mode}

	switch sc.Mode {
	case ModeIterative, "":
		outcome.Mode = ModeIterative
		result, err := s.Iterate(ctx, sc.Election())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
		outcome.Scores = result.Counts
		outcome.Winners = []int{result.Winner}

	case ModeRCR:
		result, err := s.IterateRCR(ctx, sc.Election())
		if err != nil {
			return nil, err
		}
		outcome.Result = result
		outcome.Scores = result.Counts
		outcome.Winners = []int{result.Winner}

	case ModePlurality:
		scores, err := Plurality(sc.Profiles, sc.Candidates)
		if err != nil {
			return nil, err
		}
		outcome.Scores = scores.Counts
		outcome.Winners = scores.Top

	case ModeBorda:
		points, err := BordaScores(sc.Profiles, sc.Candidates)
		if err != nil {
			return nil, err
		}
		outcome.Scores = points
		outcome.Winners = ArgMax(points)

	case ModeCondorcet:
		winners, err := Condorcet(sc.Profiles, sc.Candidates)
		if err != nil {
			return nil, err
		}
		outcome.Winners = winners

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, sc.Mode)
	}
	return outcome, nil
}
