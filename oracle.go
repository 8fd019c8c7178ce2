package itervote

import (
	"math/rand/v2"
	"slices"
)

// IsBetterReply tells if a voter currently voting for current, with the true
// preference profile preference, should move its vote to candidate.
// The move must be a direct reply, candidate is among the leaders once the
// vote has moved, and a better reply, the winner after the move is strictly
// preferred to the winner before it. Both winners are resolved with the same
// tiebreak and rng. counts is left untouched
func IsBetterReply(current, candidate int, counts []int, preference []int, tiebreak TieBreak, rng *rand.Rand) bool {
	if current == candidate {
		return false
	}
	rank := make([]int, len(preference))
	for position, c := range preference {
		rank[c] = position
	}
	return betterReply(current, candidate, slices.Clone(counts), rank, tiebreak, rng)
}

// betterReply is IsBetterReply working on a rank table instead of a profile.
// counts is modified during the call and restored before returning
func betterReply(current, candidate int, counts []int, rank []int, tiebreak TieBreak, rng *rand.Rand) bool {
	counts[current]--
	counts[candidate]++
	wasted := counts[candidate] != extreme(counts, Max)
	counts[current]++
	counts[candidate]--
	if wasted {
		return false
	}

	before := winnerOf(counts, tiebreak, rng)

	counts[current]--
	counts[candidate]++
	after := winnerOf(counts, tiebreak, rng)
	counts[current]++
	counts[candidate]--

	return rank[after] < rank[before]
}

// winnerOf returns the winner of a non empty tally
func winnerOf(counts []int, tiebreak TieBreak, rng *rand.Rand) int {
	winner, _ := Select(counts, tiebreak, Max, rng)
	return winner
}
