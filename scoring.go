package itervote

// Scores holds the outcome of a plurality tally
type Scores struct {
	// Counts is the number of first preferences per candidate
	Counts []int

	// Top holds the candidates with the most first preferences
	Top []int

	// Bottom holds the candidates with the fewest first preferences
	Bottom []int
}

// Plurality tallies first preferences. The winner can hold
// less than half of the votes
func Plurality(profiles [][]int, m int) (Scores, error) {
	if err := ValidateProfiles(profiles, m); err != nil {
		return Scores{}, err
	}

	counts := make([]int, m)
	for _, profile := range profiles {
		counts[profile[0]]++
	}
	return Scores{
		Counts: counts,
		Top:    ArgMax(counts),
		Bottom: ArgMin(counts),
	}, nil
}

// BordaScores gives m-1-rank points to each candidate of every profile
func BordaScores(profiles [][]int, m int) ([]int, error) {
	if err := ValidateProfiles(profiles, m); err != nil {
		return nil, err
	}

	points := make([]int, m)
	for _, profile := range profiles {
		for rank, candidate := range profile {
			points[candidate] += m - 1 - rank
		}
	}
	return points, nil
}

// Borda returns the candidates with the most Borda points
func Borda(profiles [][]int, m int) ([]int, error) {
	points, err := BordaScores(profiles, m)
	if err != nil {
		return nil, err
	}
	return ArgMax(points), nil
}

// HeadToHead returns the m x m pairwise matrix where cell [i][j]
// is the number of voters ranking i above j
func HeadToHead(profiles [][]int, m int) ([][]int, error) {
	if err := ValidateProfiles(profiles, m); err != nil {
		return nil, err
	}

	matrix := make([][]int, m)
	for i := range matrix {
		matrix[i] = make([]int, m)
	}
	for _, profile := range profiles {
		for index, candidate := range profile {
			for _, lessPreferred := range profile[index+1:] {
				matrix[candidate][lessPreferred]++
			}
		}
	}
	return matrix, nil
}

// Condorcet returns the weak Condorcet winners: candidates that
// beat or tie every other candidate head to head.
// The result is empty when there is none
func Condorcet(profiles [][]int, m int) ([]int, error) {
	matrix, err := HeadToHead(profiles, m)
	if err != nil {
		return nil, err
	}

	winners := []int{}
	for i := 0; i < m; i++ {
		wins := 0
		for j := 0; j < m; j++ {
			if i != j && matrix[i][j] >= matrix[j][i] {
				wins++
			}
		}
		if wins == m-1 {
			winners = append(winners, i)
		}
	}
	return winners, nil
}
