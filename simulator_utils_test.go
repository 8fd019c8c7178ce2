package itervote

import (
	"math/rand/v2"
	"testing"

	"github.com/jackc/fake"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// basicSimulatorSetup is only a helper for other unit testing.
// Each simulator gets its own registry so metrics can be asserted
func basicSimulatorSetup(t *testing.T, tiebreak TieBreak, seed uint64) *Simulator {
	t.Helper()
	logger := zerolog.Nop()
	s, err := NewSimulator(Options{
		ID:                fake.CharactersN(8),
		Logger:            &logger,
		TieBreak:          tiebreak,
		Seed:              seed,
		MetricsRegisterer: prometheus.NewRegistry(),
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// randomProfiles returns n random preference profiles over m candidates
func randomProfiles(rng *rand.Rand, n, m int) [][]int {
	profiles := make([][]int, n)
	for voter := range profiles {
		profiles[voter] = rng.Perm(m)
	}
	return profiles
}

// strategicProfiles is a 7 voters, 3 candidates population
// where truthful voting is not a fixed point
func strategicProfiles() [][]int {
	return [][]int{
		{0, 1, 2},
		{0, 1, 2},
		{2, 0, 1},
		{2, 0, 1},
		{2, 0, 1},
		{1, 0, 2},
		{1, 0, 2},
	}
}
