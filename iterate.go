package itervote

import (
	"context"
	"fmt"
	"time"
)

// Iterate runs best response dynamics over the election until no voter
// changes its vote during n consecutive voter steps, n being the number of voters.
// ErrNonConvergence is returned when the loop runs more than MaxPasses passes
func (s *Simulator) Iterate(ctx context.Context, election Election) (*Result, error) {
	s.randMu.Lock()
	defer s.randMu.Unlock()

	r, err := s.newRun(ModeIterative, election)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	defer s.metrics.timeSince(ModeIterative, start)

	r.logger.Info().
		Int("voters", r.n).
		Int("candidates", r.m).
		Str("tiebreak", s.options.TieBreak.String()).
		Msg("Starting iterative plurality")

	converged, err := r.settle(ctx, r.limit())
	if err != nil {
		s.metrics.observeRun(ModeIterative, outcomeCanceled, r.steps, r.changes)
		return nil, err
	}
	if !converged {
		s.metrics.observeRun(ModeIterative, outcomeNonConvergence, r.steps, r.changes)
		r.logger.Warn().
			Int("steps", r.steps).
			Int("changes", r.changes).
			Msgf("No convergence after %d passes", s.options.MaxPasses)
		return nil, fmt.Errorf("%w after %d voter steps", ErrNonConvergence, r.steps)
	}
	s.metrics.observeRun(ModeIterative, outcomeConverged, r.steps, r.changes)

	result := r.result(winnerOf(r.counts, s.options.TieBreak, s.rand))
	// the n unchanged steps that detected convergence are not reported
	result.Steps -= r.n

	r.logger.Info().
		Int("winner", result.Winner).
		Int("steps", result.Steps).
		Int("changes", result.Changes).
		Msg("Iterative plurality converged")
	return result, nil
}
