package itervote

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// run holds the evolving state of one simulation.
// Voters are always visited in population order and candidates
// are always scanned in increasing index order, which makes seeded
// runs reproducible
type run struct {
	// id of the run
	id string

	// mode of the run
	mode Mode

	// simulator running this run
	simulator *Simulator

	// logger is the simulator logger with run fields
	logger zerolog.Logger

	// n is the number of voters and m the number of candidates
	n, m int

	// ranks[voter][candidate] is the position of candidate in
	// the voter true preference profile
	ranks [][]int

	// votes is the current vote of each voter
	votes []int

	// counts is the number of votes per candidate,
	// updated along votes
	counts []int

	// viable is only set by RCR runs.
	// viable[candidate] is false once candidate has been eliminated
	viable []bool

	// viableList holds viable candidates in increasing order
	viableList []int

	// steps is the number of voter steps executed so far
	steps int

	// changes is the number of accepted vote changes so far
	changes int

	// passes is the number of passes started so far
	passes int
}

// newRun validates the election and builds the initial state.
// Callers must hold simulator randMu
func (s *Simulator) newRun(mode Mode, election Election) (*run, error) {
	if err := ValidateProfiles(election.Profiles, election.Candidates); err != nil {
		return nil, err
	}
	n, m := len(election.Profiles), election.Candidates

	r := &run{
		id:        uuid.NewString(),
		mode:      mode,
		simulator: s,
		n:         n,
		m:         m,
		ranks:     rankTable(election.Profiles, m),
	}
	r.logger = s.Logger.With().
		Str("simulatorId", s.id).
		Str("runId", r.id).
		Str("mode", string(mode)).
		Logger()

	switch {
	case election.Truthful:
		r.votes = make([]int, n)
		for voter, profile := range election.Profiles {
			r.votes[voter] = profile[0]
		}

	case election.InitialVotes != nil:
		if err := validateVotes(election.InitialVotes, n, m); err != nil {
			return nil, err
		}
		r.votes = slices.Clone(election.InitialVotes)

	default:
		r.votes = make([]int, n)
		for voter := range r.votes {
			r.votes[voter] = s.rand.IntN(m)
		}
	}
	r.counts = Tally(r.votes, m)
	return r, nil
}

// move switches the vote of voter to candidate
func (r *run) move(voter, candidate int) {
	r.logger.Trace().
		Int("voter", voter).
		Int("from", r.votes[voter]).
		Int("to", candidate).
		Msg("Vote changed")

	r.counts[r.votes[voter]]--
	r.counts[candidate]++
	r.votes[voter] = candidate
}

// isViable tells if candidate can still receive votes
func (r *run) isViable(candidate int) bool {
	return r.viable == nil || r.viable[candidate]
}

// step lets voter reconsider its vote and returns true when it changed.
// A vote for an eliminated candidate is first moved to a random viable one.
// Then the first candidate, in increasing index order, being a better reply
// is taken
func (r *run) step(voter int) bool {
	changed := false
	if !r.isViable(r.votes[voter]) {
		r.move(voter, r.viableList[r.simulator.rand.IntN(len(r.viableList))])
		changed = true
	}

	current := r.votes[voter]
	for candidate := 0; candidate < r.m; candidate++ {
		if candidate == current || !r.isViable(candidate) {
			continue
		}
		if betterReply(current, candidate, r.counts, r.ranks[voter], r.simulator.options.TieBreak, r.simulator.rand) {
			r.move(voter, candidate)
			return true
		}
	}
	return changed
}

// settle runs voter steps until n consecutive steps change nothing.
// It returns false when limit steps have been executed without converging
func (r *run) settle(ctx context.Context, limit int) (bool, error) {
	executed := 0
	unchanged := 0
	for voter := 0; unchanged < r.n; voter = (voter + 1) % r.n {
		if executed >= limit {
			return false, nil
		}
		if voter == 0 {
			if err := ctx.Err(); err != nil {
				return false, err
			}
			r.passes++
		}

		executed++
		r.steps++
		if r.step(voter) {
			r.changes++
			unchanged = 0
		} else {
			unchanged++
		}
	}
	return true, nil
}

// limit returns the maximum number of voter steps of a settle loop
func (r *run) limit() int {
	return int(r.simulator.options.MaxPasses) * max(r.n, 1)
}

// result builds the simulation output
func (r *run) result(winner int) *Result {
	return &Result{
		RunID:   r.id,
		Votes:   r.votes,
		Counts:  r.counts,
		Winner:  winner,
		Steps:   r.steps,
		Changes: r.changes,
		Passes:  r.passes,
	}
}
