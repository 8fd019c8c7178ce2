package itervote

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBetterReply(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name       string
		current    int
		candidate  int
		counts     []int
		preference []int
		expected   bool
	}{
		{
			name:       "better_reply",
			current:    2,
			candidate:  1,
			counts:     []int{2, 2, 1},
			preference: []int{1, 2, 0},
			expected:   true,
		},
		{
			name:       "same_winner",
			current:    2,
			candidate:  0,
			counts:     []int{2, 2, 1},
			preference: []int{1, 2, 0},
		},
		{
			name:       "wasted_vote",
			current:    2,
			candidate:  1,
			counts:     []int{3, 1, 1},
			preference: []int{1, 2, 0},
		},
		{
			name:       "tie_lost_to_lower_index",
			current:    2,
			candidate:  1,
			counts:     []int{3, 2, 1},
			preference: []int{1, 2, 0},
		},
		{
			name:       "tie_won_by_lower_index",
			current:    2,
			candidate:  0,
			counts:     []int{2, 3, 1},
			preference: []int{0, 2, 1},
			expected:   true,
		},
		{
			name:       "worse_winner",
			current:    0,
			candidate:  1,
			counts:     []int{2, 2, 3},
			preference: []int{0, 2, 1},
		},
		{
			name:       "same_candidate",
			current:    1,
			candidate:  1,
			counts:     []int{1, 1},
			preference: []int{1, 0},
		},
	}

	for _, tc := range tests {
		counts := slices.Clone(tc.counts)
		got := IsBetterReply(tc.current, tc.candidate, counts, tc.preference, Lexicographical, nil)
		assert.Equal(tc.expected, got, tc.name)
		assert.Equal(tc.counts, counts, tc.name)
	}
}

// A true answer must be justified when recomputing the move from scratch
func TestIsBetterReply_soundness(t *testing.T) {
	assert := assert.New(t)
	rng := rand.New(rand.NewPCG(11, 13))

	accepted := 0
	for range 200 {
		m := 2 + rng.IntN(4)
		n := 1 + rng.IntN(12)
		profiles := randomProfiles(rng, n, m)
		votes := make([]int, n)
		for voter := range votes {
			votes[voter] = rng.IntN(m)
		}
		counts := Tally(votes, m)

		for voter, profile := range profiles {
			for candidate := range m {
				if !IsBetterReply(votes[voter], candidate, counts, profile, Lexicographical, nil) {
					continue
				}
				accepted++

				moved := slices.Clone(votes)
				moved[voter] = candidate
				after := Tally(moved, m)
				assert.Contains(ArgMax(after), candidate)

				before, err := Select(counts, Lexicographical, Max, nil)
				assert.Nil(err)
				winner, err := Select(after, Lexicographical, Max, nil)
				assert.Nil(err)
				assert.Less(slices.Index(profile, winner), slices.Index(profile, before))
			}
		}
	}
	assert.Greater(accepted, 0)
}

func TestBetterReply_restoresCounts(t *testing.T) {
	assert := assert.New(t)

	counts := []int{2, 3, 1}
	rank := []int{0, 2, 1}
	assert.True(betterReply(2, 0, counts, rank, Lexicographical, nil))
	assert.Equal([]int{2, 3, 1}, counts)
	assert.False(betterReply(2, 1, counts, rank, Lexicographical, nil))
	assert.Equal([]int{2, 3, 1}, counts)
}
