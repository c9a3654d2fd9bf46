package domain

import "fmt"

// Algorithm selects one of the four generation strategies.
type Algorithm int

const (
	Backtracking Algorithm = iota
	MRV
	DSATUR
	ExactCover
)

// Valid reports whether a names one of the four strategies. Decoded JSON
// can carry any int, so persistence boundaries must check this.
func (a Algorithm) Valid() bool {
	return a >= Backtracking && a <= ExactCover
}

func (a Algorithm) String() string {
	switch a {
	case Backtracking:
		return "backtracking"
	case MRV:
		return "mrv"
	case DSATUR:
		return "dsatur"
	case ExactCover:
		return "exactcover"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a user-supplied name to an Algorithm. "dlx" and
// "knuth" are accepted aliases for the exact-cover solver.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "backtracking", "backtrack":
		return Backtracking, nil
	case "mrv":
		return MRV, nil
	case "dsatur":
		return DSATUR, nil
	case "exactcover", "dlx", "knuth":
		return ExactCover, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q: %w", s, ErrInvalidConfig)
}
