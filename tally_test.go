package itervote

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTally(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]int{2, 0, 1}, Tally([]int{0, 2, 0}, 3))
	assert.Equal([]int{0, 0}, Tally(nil, 2))

	rng := rand.New(rand.NewPCG(7, 7))
	for range 50 {
		m := 1 + rng.IntN(6)
		votes := make([]int, rng.IntN(40))
		for i := range votes {
			votes[i] = rng.IntN(m)
		}

		sum := 0
		for _, count := range Tally(votes, m) {
			sum += count
		}
		assert.Equal(len(votes), sum)
	}
}

func TestValidateProfiles(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name     string
		profiles [][]int
		m        int
		err      error
	}{
		{
			name:     "valid",
			profiles: [][]int{{0, 1, 2}, {2, 1, 0}},
			m:        3,
		},
		{
			name: "no_voters",
			m:    2,
		},
		{
			name:     "no_candidates",
			profiles: [][]int{{}},
			m:        0,
			err:      ErrInvalidCandidates,
		},
		{
			name:     "too_short",
			profiles: [][]int{{0, 1, 2}, {0, 1}},
			m:        3,
			err:      ErrInvalidProfile,
		},
		{
			name:     "duplicate",
			profiles: [][]int{{0, 0, 2}},
			m:        3,
			err:      ErrInvalidProfile,
		},
		{
			name:     "out_of_range",
			profiles: [][]int{{0, 1, 3}},
			m:        3,
			err:      ErrInvalidProfile,
		},
		{
			name:     "negative",
			profiles: [][]int{{-1, 0}},
			m:        2,
			err:      ErrInvalidProfile,
		},
	}

	for _, tc := range tests {
		err := ValidateProfiles(tc.profiles, tc.m)
		if tc.err == nil {
			assert.Nil(err, tc.name)
		} else {
			assert.ErrorIs(err, tc.err, tc.name)
		}
	}
}

func TestValidateVotes(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(validateVotes([]int{0, 2}, 2, 3))
	assert.ErrorIs(validateVotes([]int{0}, 2, 3), ErrInvalidVotes)
	assert.ErrorIs(validateVotes([]int{0, 3}, 2, 3), ErrInvalidVotes)
	assert.ErrorIs(validateVotes([]int{-1, 0}, 2, 3), ErrInvalidVotes)
}

func TestRankTable(t *testing.T) {
	assert := assert.New(t)

	ranks := rankTable([][]int{{2, 0, 1}, {0, 1, 2}}, 3)
	assert.Equal([][]int{{1, 2, 0}, {0, 1, 2}}, ranks)
}
