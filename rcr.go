package itervote

import (
	"context"
	"math"
	"slices"
	"time"
)

// IterateRCR runs best response dynamics with randomized candidate removal.
// After each settle round, the least popular viable candidate is eliminated
// and voters still voting for it re-vote at random among viable candidates
// on their next step. It stops once a single viable candidate remains.
// A round hitting MaxPasses is not an error, elimination goes on.
// Steps counts every voter step of every round
func (s *Simulator) IterateRCR(ctx context.Context, election Election) (*Result, error) {
	s.randMu.Lock()
	defer s.randMu.Unlock()

	r, err := s.newRun(ModeRCR, election)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer s.metrics.timeSince(ModeRCR, start)

	r.viable = make([]bool, r.m)
	r.viableList = make([]int, r.m)
	for candidate := range r.m {
		r.viable[candidate] = true
		r.viableList[candidate] = candidate
	}

	r.logger.Info().
		Int("voters", r.n).
		Int("candidates", r.m).
		Str("tiebreak", s.options.TieBreak.String()).
		Msg("Starting iterative plurality with randomized candidate removal")

	var (
		rounds, capped int
		eliminated     []int
	)
	for len(r.viableList) > 1 {
		rounds++
		converged, err := r.settle(ctx, r.limit())
		if err != nil {
			s.metrics.observeRun(ModeRCR, outcomeCanceled, r.steps, r.changes)
			return nil, err
		}
		if !converged {
			capped++
			s.metrics.incCappedRounds()
			r.logger.Warn().
				Int("round", rounds).
				Msgf("Round stopped after %d passes without convergence", s.options.MaxPasses)
		}

		loser := r.loser()
		r.eliminate(loser)
		eliminated = append(eliminated, loser)
		s.metrics.incEliminations()
		r.logger.Debug().
			Int("round", rounds).
			Int("eliminated", loser).
			Ints("counts", r.counts).
			Msgf("Candidate %d eliminated, %d remaining", loser, len(r.viableList))
	}

	// The survivor is the only possible vote left
	survivor := r.viableList[0]
	for voter, vote := range r.votes {
		if vote != survivor {
			r.move(voter, survivor)
		}
	}
	s.metrics.observeRun(ModeRCR, outcomeConverged, r.steps, r.changes)

	result := r.result(survivor)
	result.Rounds = rounds
	result.CappedRounds = capped
	result.Eliminated = eliminated

	r.logger.Info().
		Int("winner", result.Winner).
		Int("steps", result.Steps).
		Int("rounds", result.Rounds).
		Msg("Randomized candidate removal finished")
	return result, nil
}

// loser returns the least popular viable candidate.
// Eliminated candidates are masked with an infinite count
func (r *run) loser() int {
	masked := slices.Clone(r.counts)
	for candidate, ok := range r.viable {
		if !ok {
			masked[candidate] = math.MaxInt
		}
	}
	loser, _ := Select(masked, r.simulator.options.TieBreak, Min, r.simulator.rand)
	return loser
}

// eliminate removes candidate from the viable set
func (r *run) eliminate(candidate int) {
	r.viable[candidate] = false
	r.viableList = slices.DeleteFunc(r.viableList, func(c int) bool {
		return c == candidate
	})
}
