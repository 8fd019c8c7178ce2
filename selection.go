package itervote

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// ArgMax returns, in increasing order, every index holding the maximum value
func ArgMax(values []int) []int {
	return argExtreme(values, Max)
}

// ArgMin returns, in increasing order, every index holding the minimum value
func ArgMin(values []int) []int {
	return argExtreme(values, Min)
}

func argExtreme(values []int, direction Direction) []int {
	if len(values) == 0 {
		return nil
	}
	best := extreme(values, direction)
	var indexes []int
	for i, v := range values {
		if v == best {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// extreme returns the maximum or the minimum of a non empty slice
func extreme(values []int, direction Direction) int {
	best := values[0]
	for _, v := range values[1:] {
		if (direction == Max && v > best) || (direction == Min && v < best) {
			best = v
		}
	}
	return best
}

// Select returns one index of the arg-max or arg-min set of values.
// Ties are resolved with the tiebreak rule:
//   - Lexicographical with Max returns the smallest tied index
//   - Lexicographical with Min returns the largest tied index
//   - Random returns a tied index drawn uniformly from rng
//
// When rng is nil, the math/rand/v2 global source is used.
// ErrEmptyInput is returned when values is empty
func Select(values []int, tiebreak TieBreak, direction Direction, rng *rand.Rand) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	best := extreme(values, direction)

	switch tiebreak {
	case Lexicographical:
		if direction == Max {
			for i, v := range values {
				if v == best {
					return i, nil
				}
			}
		}
		for i := len(values) - 1; i >= 0; i-- {
			if values[i] == best {
				return i, nil
			}
		}

	case Random:
		tied := 0
		for _, v := range values {
			if v == best {
				tied++
			}
		}
		pick := intN(rng, tied)
		for i, v := range values {
			if v != best {
				continue
			}
			if pick == 0 {
				return i, nil
			}
			pick--
		}
	}
	return 0, fmt.Errorf("%w %d", ErrUnknownTieBreak, tiebreak)
}

// ParseTieBreak converts a configuration value into a TieBreak
func ParseTieBreak(value string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "lexicographical", "lexicographic", "lex":
		return Lexicographical, nil
	case "random":
		return Random, nil
	}
	return Lexicographical, fmt.Errorf("%w %q", ErrUnknownTieBreak, value)
}

// intN draws from rng or from the global source when rng is nil
func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
