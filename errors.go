package itervote

import "errors"

var (
	ErrInvalidProfile    = errors.New("preference profile is not a permutation of the candidates")
	ErrInvalidCandidates = errors.New("number of candidates must be greater than zero")
	ErrInvalidVotes      = errors.New("initial votes do not match the voter population")
	ErrEmptyInput        = errors.New("cannot select from an empty input")
	ErrNonConvergence    = errors.New("best response dynamics did not converge")
	ErrUnknownTieBreak   = errors.New("unknown tiebreak")
	ErrUnknownMode       = errors.New("unknown mode")
)
