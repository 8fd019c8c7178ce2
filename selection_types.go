package itervote

// TieBreak is the rule used to pick one candidate among
// candidates sharing the same extreme value
type TieBreak uint8

const (
	// Lexicographical picks the smallest index when selecting
	// the maximum and the largest index when selecting the minimum.
	// Winners break toward low indexes, losers toward high ones
	Lexicographical TieBreak = iota

	// Random picks uniformly among tied candidates
	Random
)

// String return a human readable tiebreak
func (t TieBreak) String() string {
	switch t {
	case Lexicographical:
		return "lexicographical"
	case Random:
		return "random"
	}
	return "unknown"
}

// Direction tells if Select must look for the maximum or the minimum
type Direction uint8

const (
	// Max selects among the arg-max set
	Max Direction = iota

	// Min selects among the arg-min set
	Min
)

// String return a human readable direction
func (d Direction) String() string {
	if d == Min {
		return "min"
	}
	return "max"
}
