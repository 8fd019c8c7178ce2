// Package itervote simulates strategic voting under plurality rule.
//
// Voters hold strict rankings over candidates 0..m-1 and, one after the
// other, move their vote to the first candidate that is a direct better
// reply: the new candidate leads the tally after the move and the resulting
// winner is strictly preferred to the current one. A Simulator runs these
// dynamics until a full pass changes nothing (Iterate) or combines them with
// randomized candidate removal until one candidate remains (IterateRCR).
//
// Plurality, Borda and Condorcet scoring are provided as one pass helpers.
package itervote
