package itervote

import "fmt"

// Tally counts how many voters currently vote for each candidate.
// Every vote must be in [0, m)
func Tally(votes []int, m int) []int {
	counts := make([]int, m)
	for _, vote := range votes {
		counts[vote]++
	}
	return counts
}

// ValidateProfiles makes sure that m is positive and that
// every preference profile is a permutation of [0, m)
func ValidateProfiles(profiles [][]int, m int) error {
	if m < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidCandidates, m)
	}

	seen := make([]bool, m)
	for voter, profile := range profiles {
		if len(profile) != m {
			return fmt.Errorf("%w: voter %d ranks %d candidates instead of %d", ErrInvalidProfile, voter, len(profile), m)
		}
		clear(seen)
		for _, candidate := range profile {
			if candidate < 0 || candidate >= m {
				return fmt.Errorf("%w: voter %d ranks unknown candidate %d", ErrInvalidProfile, voter, candidate)
			}
			if seen[candidate] {
				return fmt.Errorf("%w: voter %d ranks candidate %d twice", ErrInvalidProfile, voter, candidate)
			}
			seen[candidate] = true
		}
	}
	return nil
}

// validateVotes checks a caller supplied vote vector against
// the voter population size and the number of candidates
func validateVotes(votes []int, n, m int) error {
	if len(votes) != n {
		return fmt.Errorf("%w: %d votes for %d voters", ErrInvalidVotes, len(votes), n)
	}
	for voter, vote := range votes {
		if vote < 0 || vote >= m {
			return fmt.Errorf("%w: voter %d votes for unknown candidate %d", ErrInvalidVotes, voter, vote)
		}
	}
	return nil
}

// rankTable returns for each voter the position of every candidate
// in its preference profile, 0 being the most preferred
func rankTable(profiles [][]int, m int) [][]int {
	ranks := make([][]int, len(profiles))
	for voter, profile := range profiles {
		ranks[voter] = make([]int, m)
		for rank, candidate := range profile {
			ranks[voter][candidate] = rank
		}
	}
	return ranks
}
